package requests

// AddTopicRequest appends a topic slot; empty text adds a blank slot
type AddTopicRequest struct {
	Text string `json:"text,omitempty" maxLength:"500" doc:"Topic text"`
}

// EditTopicRequest replaces the text of one topic slot
type EditTopicRequest struct {
	Text string `json:"text" maxLength:"500" doc:"Topic text"`
}
