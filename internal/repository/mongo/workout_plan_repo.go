package mongo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/repository"
)

const workoutPlanCollectionName = "workout_plans"

// mongoWorkoutPlanRepository implements repository.WorkoutPlanRepository
type mongoWorkoutPlanRepository struct {
	collection *mongo.Collection
}

func newMongoWorkoutPlanRepository(db *mongo.Database) *mongoWorkoutPlanRepository {
	return &mongoWorkoutPlanRepository{
		collection: db.Collection(workoutPlanCollectionName),
	}
}

func (r *mongoWorkoutPlanRepository) ListWorkoutPlans(ctx context.Context) ([]domain.WorkoutPlan, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoWorkoutPlanRepository) ListWorkoutPlansByWeek(ctx context.Context, week int) ([]domain.WorkoutPlan, error) {
	return r.find(ctx, bson.M{"week": week})
}

func (r *mongoWorkoutPlanRepository) find(ctx context.Context, filter bson.M) ([]domain.WorkoutPlan, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "dayOfWeek", Value: 1},
		{Key: "week", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plans := []domain.WorkoutPlan{}
	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mongoWorkoutPlanRepository) GetWorkoutPlan(ctx context.Context, id string) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *mongoWorkoutPlanRepository) CreateWorkoutPlan(ctx context.Context, in domain.NewWorkoutPlan) (*domain.WorkoutPlan, error) {
	plan := in.Build(uuid.NewString())
	if _, err := r.collection.InsertOne(ctx, plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdateWorkoutPlan sets only the fields present in the patch.
func (r *mongoWorkoutPlanRepository) UpdateWorkoutPlan(ctx context.Context, id string, patch domain.WorkoutPlanPatch) (*domain.WorkoutPlan, error) {
	set := planPatchDocument(patch)
	if len(set) == 0 {
		return r.GetWorkoutPlan(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var plan domain.WorkoutPlan
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func planPatchDocument(patch domain.WorkoutPlanPatch) bson.M {
	set := bson.M{}
	if patch.DayOfWeek != nil {
		set["dayOfWeek"] = *patch.DayOfWeek
	}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Duration != nil {
		set["duration"] = *patch.Duration
	}
	if patch.ExerciseCount != nil {
		set["exerciseCount"] = *patch.ExerciseCount
	}
	if patch.Focus != nil {
		set["focus"] = patch.Focus
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Week != nil {
		set["week"] = *patch.Week
	}
	return set
}

func (r *mongoWorkoutPlanRepository) DeleteWorkoutPlan(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func ensureWorkoutPlanIndexes(ctx context.Context, collection *mongo.Collection) {
	createIndexes(ctx, collection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "week", Value: 1}, {Key: "dayOfWeek", Value: 1}},
			Options: options.Index(),
		},
	})
}
