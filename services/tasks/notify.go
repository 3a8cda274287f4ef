package tasks

import (
	"encoding/json"

	"slotify/models"

	"github.com/hibiken/asynq"
)

const TypeNotifyBooking = "notify:booking"

func NewNotifyTask(n models.Notification) (*asynq.Task, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyBooking, b), nil
}
