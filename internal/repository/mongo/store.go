// Package mongo is the MongoDB backend of repository.Store and
// repository.UserRepository.
package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"fittracker/backend/internal/repository"
)

var _ repository.Store = (*Store)(nil)

// Store combines the workout, plan and stats collections of one database.
type Store struct {
	*mongoWorkoutRepository
	*mongoWorkoutPlanRepository
	*mongoUserStatsRepository
}

func NewStore(db *mongo.Database) *Store {
	stats := newMongoUserStatsRepository(db)
	return &Store{
		mongoWorkoutRepository:     newMongoWorkoutRepository(db, stats),
		mongoWorkoutPlanRepository: newMongoWorkoutPlanRepository(db),
		mongoUserStatsRepository:   stats,
	}
}
