package scheduleRepo

import (
	"context"
	"fmt"

	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReplaceWeeklyHours swaps a service's entire weekly schedule in one
// transaction: every prior weekday document is deleted, then the new set is
// inserted. Days absent from the new set simply end up with no segments.
func (r *MongoScheduleRepo) ReplaceWeeklyHours(ctx context.Context, serviceID string, days []models.WeeklyHours) error {
	client := r.weeklyColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.weeklyColl.DeleteMany(sc, bson.M{"serviceId": serviceID}); err != nil {
			return fmt.Errorf("delete prior weekly hours failed: %w", err)
		}
		if len(days) == 0 {
			return nil
		}

		docs := make([]interface{}, 0, len(days))
		for _, day := range days {
			day.ServiceID = serviceID
			docs = append(docs, day)
		}
		if _, err := r.weeklyColl.InsertMany(sc, docs); err != nil {
			return fmt.Errorf("insert weekly hours failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("weekly hours replacement failed: %w", err)
	}

	return nil
}
