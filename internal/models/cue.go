package models

// Cue is a fire-and-forget feedback notification for the audio layer.
type Cue string

const (
	CuePop          Cue = "pop"
	CueKeyType      Cue = "key_type"
	CueKeyReject    Cue = "key_reject"
	CueCookStart    Cue = "cook_start"
	CueOrderUp      Cue = "order_up"
	CueCash         Cue = "cash"
	CueTrash        Cue = "trash"
	CueServiceStart Cue = "service_start"
	CueServiceStop  Cue = "service_stop"
)
