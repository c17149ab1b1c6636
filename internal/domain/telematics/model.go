package telematics

import "time"

type EventType string

const (
	IgnitionOn    EventType = "ignition_on"
	IgnitionOff   EventType = "ignition_off"
	Speeding      EventType = "speeding"
	GeofenceEntry EventType = "geofence_entry"
	GeofenceExit  EventType = "geofence_exit"
	BatteryLow    EventType = "battery_low"
	Movement      EventType = "movement"
)

// Payload — сырое событие от телематического провайдера.
type Payload struct {
	DeviceID   string         `json:"deviceId"`
	VehicleID  string         `json:"vehicleId"`
	Type       string         `json:"type"`
	RecordedAt time.Time      `json:"recordedAt"`
	Data       map[string]any `json:"data"`
}

type Event struct {
	ID         string         `json:"id"`
	VehicleID  string         `json:"vehicleId"`
	RecordedAt time.Time      `json:"recordedAt"`
	Type       EventType      `json:"type"`
	Source     string         `json:"source"`
	Payload    map[string]any `json:"payload"`
	CreatedAt  time.Time      `json:"createdAt"`
}
