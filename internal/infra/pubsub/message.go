package pubsub

// PushMessage is the envelope Google Pub/Sub POSTs to push subscribers.
// The local publisher produces the same shape so the worker cannot tell them apart.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"` // base64 JSON payload
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// message attribute keys
const (
	AttrRequestID = "request_id"
	AttrCityID    = "city_id"
)
