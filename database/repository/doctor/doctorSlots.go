// File: database/repository/doctor/doctorSlots.go
package doctorRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// ReserveSlot appends slotTime under dateKey in the doctor's booked index.
// The filter asserts in the same write that the doctor still accepts
// bookings and that the slot is not yet present, so two concurrent bookings
// of the same slot cannot both succeed.
func (r *MongoDoctorRepo) ReserveSlot(id, dateKey, slotTime string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":                    id,
		"available":             true,
		"slotsBooked." + dateKey: bson.M{"$ne": slotTime},
	}
	update := bson.M{
		"$push": bson.M{"slotsBooked." + dateKey: slotTime},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve slot %s %s for doctor %s: %w", dateKey, slotTime, id, err)
	}
	if result.MatchedCount == 0 {
		return ErrSlotTaken
	}
	return nil
}

// ReleaseSlot removes slotTime from the doctor's booked index under dateKey.
// Releasing a slot that is not booked is a no-op.
func (r *MongoDoctorRepo) ReleaseSlot(id, dateKey, slotTime string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"slotsBooked." + dateKey: slotTime},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to release slot %s %s for doctor %s: %w", dateKey, slotTime, id, err)
	}
	return nil
}

// PruneBookedSlots unsets the given date keys from the doctor's booked index.
func (r *MongoDoctorRepo) PruneBookedSlots(id string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	unset := bson.M{}
	for _, k := range keys {
		unset["slotsBooked."+k] = ""
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$unset": unset}); err != nil {
		return fmt.Errorf("failed to prune booked slots for doctor %s: %w", id, err)
	}
	return nil
}
