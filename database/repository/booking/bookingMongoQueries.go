package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// decodeAll drains a find query into a booking slice.
func (r *MongoBookingRepo) decodeAll(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// GetActiveByServiceBetween returns the Pending and Confirmed bookings of a
// service whose start falls in [from, to).
func (r *MongoBookingRepo) GetActiveByServiceBetween(ctx context.Context, serviceID string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"serviceId": serviceID,
		"status":    bson.M{"$in": models.ActiveStatuses},
		"start":     bson.M{"$gte": from, "$lt": to},
	}
	return r.decodeAll(ctx, filter, nil)
}

// GetByCustomer returns all bookings made by a customer, newest start first.
func (r *MongoBookingRepo) GetByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: -1}})
	return r.decodeAll(ctx, bson.M{"customerId": customerID}, opts)
}

// GetByProvider returns all bookings against a provider's services, newest
// start first.
func (r *MongoBookingRepo) GetByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: -1}})
	return r.decodeAll(ctx, bson.M{"providerId": providerID}, opts)
}
