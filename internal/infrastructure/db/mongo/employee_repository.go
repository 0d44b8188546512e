package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/staffhub/hrms/internal/core/domain"
	"github.com/staffhub/hrms/internal/core/ports"
)

// MongoEmployeeRepository is the employee-facing view of the accounts
// collection: every filter includes kind == employee.
type MongoEmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{coll: db.Collection(accountsCollection)}
}

func employeeFilter(extra bson.M) bson.M {
	filter := bson.M{"kind": string(domain.KindEmployee)}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

func (r *MongoEmployeeRepository) List(ctx context.Context) ([]*domain.Account, error) {
	return r.find(ctx, employeeFilter(nil), nil)
}

func (r *MongoEmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	var ma mongoAccount
	if err := r.coll.FindOne(ctx, employeeFilter(bson.M{"_id": oid})).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoEmployeeRepository) Create(ctx context.Context, employee *domain.Account) (*domain.Account, error) {
	doc := toMongoAccount(employee)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	created := *employee
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoEmployeeRepository) Update(ctx context.Context, employee *domain.Account) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(employee.ID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        employee.Name,
		"email":       employee.Email,
		"role":        employee.Role.String(),
		"mobile":      employee.Mobile,
		"designation": employee.Designation,
		"gender":      employee.Gender,
		"image":       employee.Image,
		"courses":     employee.Courses,
		"updated_at":  employee.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, employeeFilter(bson.M{"_id": oid}), update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAccountNotFound
	}
	return employee, nil
}

func (r *MongoEmployeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	res, err := r.coll.DeleteOne(ctx, employeeFilter(bson.M{"_id": oid}))
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *MongoEmployeeRepository) Search(ctx context.Context, query string) ([]*domain.Account, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := employeeFilter(bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"email": pattern},
		bson.M{"designation": pattern},
	}})
	return r.find(ctx, filter, nil)
}

func (r *MongoEmployeeRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, employeeFilter(nil))
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

func (r *MongoEmployeeRepository) CountByGender(ctx context.Context, gender string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, employeeFilter(bson.M{"gender": gender}))
	if err != nil {
		return 0, fmt.Errorf("count employees by gender: %w", err)
	}
	return n, nil
}

func (r *MongoEmployeeRepository) CountByDesignation(ctx context.Context) ([]ports.DesignationCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: employeeFilter(nil)}},
		{{Key: "$group", Value: bson.M{"_id": "$designation", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate designations: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("decode designation buckets: %w", err)
	}

	counts := make([]ports.DesignationCount, 0, len(buckets))
	for _, b := range buckets {
		counts = append(counts, ports.DesignationCount{Designation: b.ID, Count: b.Count})
	}
	return counts, nil
}

func (r *MongoEmployeeRepository) CountByCourse(ctx context.Context) ([]ports.CourseCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: employeeFilter(nil)}},
		{{Key: "$unwind", Value: "$courses"}},
		{{Key: "$group", Value: bson.M{"_id": "$courses", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate courses: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("decode course buckets: %w", err)
	}

	counts := make([]ports.CourseCount, 0, len(buckets))
	for _, b := range buckets {
		counts = append(counts, ports.CourseCount{Course: b.ID, Count: b.Count})
	}
	return counts, nil
}

func (r *MongoEmployeeRepository) Designations(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "designation", employeeFilter(nil))
	if err != nil {
		return nil, fmt.Errorf("distinct designations: %w", err)
	}

	designations := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			designations = append(designations, s)
		}
	}
	return designations, nil
}

func (r *MongoEmployeeRepository) RecentHires(ctx context.Context, limit int) ([]*domain.Account, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, employeeFilter(nil), opts)
}

func (r *MongoEmployeeRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Account, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAccount
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}

	employees := make([]*domain.Account, 0, len(docs))
	for _, d := range docs {
		employees = append(employees, d.toDomain())
	}
	return employees, nil
}
