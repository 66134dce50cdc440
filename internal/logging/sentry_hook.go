package logging

import (
	"github.com/getsentry/sentry-go"
	sentrylogrus "github.com/getsentry/sentry-go/logrus"
	"github.com/sirupsen/logrus"
)

var sentryHookLevels = []logrus.Level{
	logrus.PanicLevel,
	logrus.FatalLevel,
	logrus.ErrorLevel,
}

// newSentryHook sends error and worse log entries through the given sentry client.
func newSentryHook(client *sentry.Client) *sentrylogrus.Hook {
	return sentrylogrus.NewFromClient(sentryHookLevels, client)
}
