package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// conditionalUpdate applies update to the booking only while its status is in
// from, reporting whether any document matched.
func (r *MongoBookingRepo) conditionalUpdate(ctx context.Context, id string, from []models.BookingStatus, update bson.M) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": from},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// UpdateStatusFrom moves the booking to a new status, guarded by the set of
// statuses the transition is legal from.
func (r *MongoBookingRepo) UpdateStatusFrom(ctx context.Context, id string, from []models.BookingStatus, to models.BookingStatus) (bool, error) {
	update := bson.M{"$set": bson.M{
		"status":    to,
		"updatedAt": time.Now().UTC(),
	}}
	return r.conditionalUpdate(ctx, id, from, update)
}

// UpdateTimeAndNotesFrom moves the start time, optionally replaces the notes,
// and sets the status, all in one guarded write. A nil notes pointer keeps
// the stored notes.
func (r *MongoBookingRepo) UpdateTimeAndNotesFrom(ctx context.Context, id string, from []models.BookingStatus, start time.Time, notes *string, to models.BookingStatus) (bool, error) {
	set := bson.M{
		"start":     start,
		"status":    to,
		"updatedAt": time.Now().UTC(),
	}
	if notes != nil {
		set["notes"] = *notes
	}
	return r.conditionalUpdate(ctx, id, from, bson.M{"$set": set})
}

// UpdateNotesFrom replaces the free-text notes without touching time or
// status, guarded by the statuses that still allow edits.
func (r *MongoBookingRepo) UpdateNotesFrom(ctx context.Context, id string, from []models.BookingStatus, notes string) (bool, error) {
	update := bson.M{"$set": bson.M{
		"notes":     notes,
		"updatedAt": time.Now().UTC(),
	}}
	return r.conditionalUpdate(ctx, id, from, update)
}
