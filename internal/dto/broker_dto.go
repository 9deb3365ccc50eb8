package dto

type BrokerFeedEntry struct {
	Id         string                 `json:"id"`
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data,omitempty"`
	RecordedAt string                 `json:"recordedAt"`
}

type BrokerFeedResponse struct {
	Total   int               `json:"total"`
	Entries []BrokerFeedEntry `json:"entries"`
}
