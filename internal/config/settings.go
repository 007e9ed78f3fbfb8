package config

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// Meta webhook surface.
	VerifyToken    string `env:"VERIFY_TOKEN"`
	AppSecret      string `env:"APP_SECRET"`
	WhatsAppToken  string `env:"WHATSAPP_TOKEN"`
	WhatsAppAPIURL string `env:"WHATSAPP_API_URL" envDefault:"https://graph.facebook.com/v19.0"`
	PhoneNumberID  string `env:"PHONE_NUMBER_ID"`

	// Dialogflow agent.
	DialogflowProjectID string `env:"DIALOGFLOW_PROJECT_ID"`
	DialogflowLanguage  string `env:"DIALOGFLOW_LANGUAGE" envDefault:"en"`

	// Google service account and spreadsheet targets.
	GoogleCredentials string `env:"GOOGLE_CREDENTIALS"`
	SheetID           string `env:"SHEET_ID"`
	TakeoverRange     string `env:"TAKEOVER_RANGE" envDefault:"Takeover!A:B"`
	LogRange          string `env:"LOG_RANGE" envDefault:"Sheet1!A:E"`
}
