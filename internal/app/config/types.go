package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Logger  Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App        App
		Prediction Prediction
		Detection  Detection
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		RequestTimeoutInSeconds   int
		QuestionCacheTTLInMinutes int
	}

	Prediction struct {
		BaseUrl          string
		TimeoutInSeconds int
	}

	Detection struct {
		// StrictMode rejects duplicate question numbers in a submission.
		// When false (the default), duplicates resolve last-write-wins.
		StrictMode bool
	}
)
