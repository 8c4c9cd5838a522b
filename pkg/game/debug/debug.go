package debug

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
}

// SetVerbose はデバッグログの出力を切り替える
func SetVerbose(on bool) {
	if on {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// Log はゲームループ用のデバッグログを出力する
func Log(format string, args ...any) {
	log.Debugf(format, args...)
}
