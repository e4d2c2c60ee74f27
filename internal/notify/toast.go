package notify

// Toast is the user-facing outcome payload every handler returns.
// Levels mirror the dashboard notification styles: validation problems
// are warnings, backend failures are errors.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Toast struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

func Success(message string) Toast {
	return Toast{Level: LevelSuccess, Message: message}
}

func Info(message string) Toast {
	return Toast{Level: LevelInfo, Message: message}
}

func Warning(message string) Toast {
	return Toast{Level: LevelWarning, Message: message}
}

func Error(message string) Toast {
	return Toast{Level: LevelError, Message: message}
}
