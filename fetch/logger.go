package fetch

import (
	"fmt"
	"log"
)

// Logger tags every line with the id of the fetch it belongs to.
type Logger interface {
	log(format string, v ...interface{})
	logError(format string, v ...interface{})
	CreateChildLogger(suffix string) Logger
}

type fetchLog struct {
	uid string
}

func NewLogger(uid string) Logger {
	return &fetchLog{uid: uid}
}

func (l *fetchLog) log(format string, v ...interface{}) {
	prefix := fmt.Sprintf("[%s] ", l.uid)
	log.Printf(prefix+format, v...)
}

func (l *fetchLog) logError(format string, v ...interface{}) {
	prefix := fmt.Sprintf("[%s] ERROR: ", l.uid)
	log.Printf(prefix+format, v...)
}

func (l *fetchLog) CreateChildLogger(suffix string) Logger {
	return NewLogger(l.uid + "/" + suffix)
}
