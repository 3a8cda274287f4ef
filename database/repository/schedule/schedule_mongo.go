package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/config"
	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB. Weekly
// hours live in one collection keyed by (serviceId, weekday), overrides in
// another keyed by (serviceId, date).
type MongoScheduleRepo struct {
	weeklyColl   *mongo.Collection
	overrideColl *mongo.Collection
}

// NewMongoScheduleRepo creates a new instance of ScheduleRepository using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDB)
	repo := &MongoScheduleRepo{
		weeklyColl:   db.Collection("weekly_hours"),
		overrideColl: db.Collection("schedule_overrides"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext derives a bounded context for one storage call.
func newContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	weeklyIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "serviceId", Value: 1}, {Key: "weekday", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.weeklyColl.Indexes().CreateMany(ctx, weeklyIndexes); err != nil {
		return fmt.Errorf("failed to create weekly hours indexes: %w", err)
	}

	overrideIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "serviceId", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.overrideColl.Indexes().CreateMany(ctx, overrideIndexes); err != nil {
		return fmt.Errorf("failed to create override indexes: %w", err)
	}
	return nil
}

// GetWeeklyHours retrieves the recurring segments for one weekday.
func (r *MongoScheduleRepo) GetWeeklyHours(ctx context.Context, serviceID string, weekday time.Weekday) (*models.WeeklyHours, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var hours models.WeeklyHours
	filter := bson.M{"serviceId": serviceID, "weekday": weekday}
	if err := r.weeklyColl.FindOne(ctx, filter).Decode(&hours); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch weekly hours for service %s: %w", serviceID, err)
	}
	return &hours, nil
}

// GetAllWeeklyHours retrieves every weekday document of a service.
func (r *MongoScheduleRepo) GetAllWeeklyHours(ctx context.Context, serviceID string) ([]models.WeeklyHours, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "weekday", Value: 1}})
	cursor, err := r.weeklyColl.Find(ctx, bson.M{"serviceId": serviceID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly hours for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	var weekly []models.WeeklyHours
	for cursor.Next(ctx) {
		var hours models.WeeklyHours
		if err := cursor.Decode(&hours); err != nil {
			return nil, fmt.Errorf("failed to decode weekly hours: %w", err)
		}
		weekly = append(weekly, hours)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return weekly, nil
}

// GetOverride retrieves the override for one calendar date.
func (r *MongoScheduleRepo) GetOverride(ctx context.Context, serviceID, date string) (*models.ScheduleOverride, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var override models.ScheduleOverride
	filter := bson.M{"serviceId": serviceID, "date": date}
	if err := r.overrideColl.FindOne(ctx, filter).Decode(&override); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch override for service %s on %s: %w", serviceID, date, err)
	}
	return &override, nil
}

// ListOverrides retrieves all overrides of a service, oldest date first.
func (r *MongoScheduleRepo) ListOverrides(ctx context.Context, serviceID string) ([]models.ScheduleOverride, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.overrideColl.Find(ctx, bson.M{"serviceId": serviceID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overrides for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	var overrides []models.ScheduleOverride
	for cursor.Next(ctx) {
		var override models.ScheduleOverride
		if err := cursor.Decode(&override); err != nil {
			return nil, fmt.Errorf("failed to decode override: %w", err)
		}
		overrides = append(overrides, override)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return overrides, nil
}

// UpsertOverride adds or replaces the override for one date.
func (r *MongoScheduleRepo) UpsertOverride(ctx context.Context, override *models.ScheduleOverride) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"serviceId": override.ServiceID, "date": override.Date}
	update := bson.M{"$set": override}
	opts := options.Update().SetUpsert(true)

	if _, err := r.overrideColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert override for service %s on %s: %w", override.ServiceID, override.Date, err)
	}
	return nil
}

// DeleteOverride removes the override for one date.
func (r *MongoScheduleRepo) DeleteOverride(ctx context.Context, serviceID, date string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"serviceId": serviceID, "date": date}
	result, err := r.overrideColl.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to delete override for service %s on %s: %w", serviceID, date, err)
	}
	return result.DeletedCount > 0, nil
}
