package dialogflow

type detectIntentRequest struct {
	QueryInput queryInput `json:"queryInput"`
}

type queryInput struct {
	Text textInput `json:"text"`
}

type textInput struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode"`
}

type detectIntentResponse struct {
	QueryResult queryResult `json:"queryResult"`
}

type queryResult struct {
	QueryText       string `json:"queryText"`
	FulfillmentText string `json:"fulfillmentText"`
	Intent          intent `json:"intent"`
}

type intent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}
