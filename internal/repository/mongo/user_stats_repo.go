package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fittracker/backend/internal/domain"
)

const (
	userStatsCollectionName = "user_stats"
	userStatsID             = "user-stats"
)

// mongoUserStatsRepository keeps the single stats document. It is created
// with zeroed counters on first access.
type mongoUserStatsRepository struct {
	collection *mongo.Collection
}

func newMongoUserStatsRepository(db *mongo.Database) *mongoUserStatsRepository {
	return &mongoUserStatsRepository{
		collection: db.Collection(userStatsCollectionName),
	}
}

func (r *mongoUserStatsRepository) GetUserStats(ctx context.Context) (*domain.UserStats, error) {
	filter := bson.M{"_id": userStatsID}
	update := bson.M{"$setOnInsert": bson.M{
		"currentStreak":   0,
		"bestStreak":      0,
		"totalWorkouts":   0,
		"lastWorkoutDate": nil,
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stats domain.UserStats
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stats); err != nil {
		return nil, fmt.Errorf("load user stats: %w", err)
	}
	return &stats, nil
}

func (r *mongoUserStatsRepository) UpdateUserStats(ctx context.Context, patch domain.UserStatsPatch) (*domain.UserStats, error) {
	current, err := r.GetUserStats(ctx)
	if err != nil {
		return nil, err
	}
	updated := patch.Apply(*current)
	if patch.LastWorkoutDate != nil && updated.LastWorkoutDate != nil {
		last := updated.LastWorkoutDate.Truncate(time.Millisecond)
		updated.LastWorkoutDate = &last
	}
	if err := r.save(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// recordWorkout applies the streak rules for a workout created at `at`.
// ErrBackdatedWorkout is passed through after the document is saved.
func (r *mongoUserStatsRepository) recordWorkout(ctx context.Context, at time.Time) error {
	stats, err := r.GetUserStats(ctx)
	if err != nil {
		return err
	}
	recordErr := stats.RecordWorkout(at)
	if err := r.save(ctx, *stats); err != nil {
		return err
	}
	if errors.Is(recordErr, domain.ErrBackdatedWorkout) {
		return recordErr
	}
	return nil
}

func (r *mongoUserStatsRepository) save(ctx context.Context, stats domain.UserStats) error {
	stats.ID = userStatsID
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": userStatsID}, stats, opts); err != nil {
		return fmt.Errorf("save user stats: %w", err)
	}
	return nil
}
