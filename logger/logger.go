package logger

import (
	"log"
	"os"
)

var (
	Log *log.Logger
)

func init() {
	// set location of log file, fall back to stderr when not configured
	var logpath = os.Getenv("LOG_FILE")
	if logpath == "" {
		Log = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
		return
	}

	var file, err1 = os.Create(logpath)
	if err1 != nil {
		Log = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
		Log.Printf("cannot create the log file %v, logging to stderr", logpath)
		return
	}
	Log = log.New(file, "", log.LstdFlags|log.Lshortfile)
	Log.Println("LogFile : " + logpath)
}
