package event_bus

// PredictionRecorded is published after a prediction has been obtained from
// the model service and persisted. The snapshot writer uses it to refresh the
// last-known-good user data document.
const PredictionRecorded EventType = "prediction.recorded"
