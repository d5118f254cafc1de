package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"asset-hub-api-server/internal/models"
)

type MongoAssignments struct {
	col *mongo.Collection
}

func (s *MongoAssignments) Insert(ctx context.Context, a *models.Assignment) error {
	result, err := s.col.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

func (s *MongoAssignments) Remove(ctx context.Context, assignmentID string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"assignmentID": assignmentID})
	return err
}

func (s *MongoAssignments) FindOwned(ctx context.Context, assignmentID, employeeEmail string) (*models.Assignment, error) {
	var assignment models.Assignment
	err := s.col.FindOne(ctx, bson.M{
		"assignmentID":  assignmentID,
		"employeeEmail": employeeEmail,
	}).Decode(&assignment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (s *MongoAssignments) List(ctx context.Context, f AssignmentFilter) ([]models.Assignment, error) {
	filter := bson.M{}
	if f.CompanyEmail != "" {
		filter["companyEmail"] = f.CompanyEmail
	}
	if f.EmployeeEmail != "" {
		filter["employeeEmail"] = f.EmployeeEmail
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	opts := options.Find().SetSort(bson.M{"assignedAt": -1})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err = cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = []models.Assignment{}
	}
	return assignments, nil
}

func (s *MongoAssignments) MarkReturned(ctx context.Context, assignmentID, employeeEmail string, at time.Time) (bool, error) {
	return s.markReturned(ctx, bson.M{
		"assignmentID":  assignmentID,
		"employeeEmail": employeeEmail,
		"status":        models.AssignmentStatusAssigned,
	}, at)
}

func (s *MongoAssignments) MarkReturnedByCompany(ctx context.Context, assignmentID, companyEmail string, at time.Time) (bool, error) {
	return s.markReturned(ctx, bson.M{
		"assignmentID": assignmentID,
		"companyEmail": companyEmail,
		"status":       models.AssignmentStatusAssigned,
	}, at)
}

func (s *MongoAssignments) markReturned(ctx context.Context, filter bson.M, at time.Time) (bool, error) {
	result, err := s.col.UpdateOne(ctx, filter,
		bson.M{"$set": bson.M{"status": models.AssignmentStatusReturned, "returnedAt": at}})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}
