package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kyamane/remote-work-api/internal/models"
)

// Collection names in the document store.
const (
	employeeCollection = "employees"
	taskCollection     = "tasks"
	projectCollection  = "projects"
)

// MongoStore wraps a MongoDB client and hands out document-backed
// repositories over one database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to MongoDB and returns a store over dbName.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

// Repositories returns the repository set backed by this store.
func (s *MongoStore) Repositories() Set {
	return Set{
		Employees: &MongoEmployeeRepository{coll: s.db.Collection(employeeCollection)},
		Projects:  &MongoProjectRepository{coll: s.db.Collection(projectCollection)},
		Tasks:     &MongoTaskRepository{coll: s.db.Collection(taskCollection)},
	}
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// MongoEmployeeRepository is a document-store implementation of
// EmployeeRepository.
type MongoEmployeeRepository struct {
	coll *mongo.Collection
}

func (r *MongoEmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	if employee.ID == "" {
		employee.ID = primitive.NewObjectID().Hex()
	}
	if employee.CreatedAt.IsZero() {
		employee.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, employee)
	return err
}

func (r *MongoEmployeeRepository) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&employee); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *MongoEmployeeRepository) FindAll(ctx context.Context) ([]models.Employee, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// MongoProjectRepository is a document-store implementation of
// ProjectRepository.
type MongoProjectRepository struct {
	coll *mongo.Collection
}

func (r *MongoProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if project.ID == "" {
		project.ID = primitive.NewObjectID().Hex()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, project)
	return err
}

func (r *MongoProjectRepository) FindByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&project); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *MongoProjectRepository) FindAll(ctx context.Context) ([]models.Project, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// MongoTaskRepository is a document-store implementation of TaskRepository.
type MongoTaskRepository struct {
	coll *mongo.Collection
}

func (r *MongoTaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = primitive.NewObjectID().Hex()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, task)
	return err
}

func (r *MongoTaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&task); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *MongoTaskRepository) FindAll(ctx context.Context) ([]models.Task, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateFields applies a partial update via $set. The canonical field keys
// already match the document key names.
func (r *MongoTaskRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
