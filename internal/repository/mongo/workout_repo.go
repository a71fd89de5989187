package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/repository"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository.
// Creating a workout also advances the stats document.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
	stats      *mongoUserStatsRepository
	now        func() time.Time
}

func newMongoWorkoutRepository(db *mongo.Database, stats *mongoUserStatsRepository) *mongoWorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
		stats:      stats,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *mongoWorkoutRepository) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workouts := []domain.Workout{}
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *mongoWorkoutRepository) GetWorkout(ctx context.Context, id string) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// CreateWorkout inserts the workout, then records it in the stats. The two
// writes are not transactional: a stats failure is logged and the inserted
// workout is still returned.
func (r *mongoWorkoutRepository) CreateWorkout(ctx context.Context, in domain.NewWorkout) (*domain.Workout, error) {
	// mongo keeps millisecond precision
	now := r.now().Truncate(time.Millisecond)
	workout := in.Build(uuid.NewString(), now)

	if _, err := r.collection.InsertOne(ctx, workout); err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	if err := r.stats.recordWorkout(ctx, now); err != nil {
		if errors.Is(err, domain.ErrBackdatedWorkout) {
			log.WithField("workout_id", workout.ID).Warn("mongo store: workout predates last workout, streak left unchanged")
		} else {
			log.WithError(err).WithField("workout_id", workout.ID).Error("mongo store: failed to update user stats")
		}
	}
	return &workout, nil
}

// DeleteWorkout removes the workout only; stats are left untouched.
func (r *mongoWorkoutRepository) DeleteWorkout(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func ensureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	createIndexes(ctx, collection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "type", Value: 1}},
			Options: options.Index(),
		},
	})
}
