package logging

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const tagField = "tag"

func init() {
	logrus.AddHook(new(TaggedHook))
}

// Setup sets the level of the standard logger.
func Setup(level string) error {
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parse log level")
	}
	logrus.SetLevel(lvl)
	return nil
}

func NewLogger(tag string) *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger()).WithField(tagField, tag)
}

// TaggedHook moves the tag field into the message as "[tag]: ".
type TaggedHook struct{}

func (h *TaggedHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *TaggedHook) Fire(entry *logrus.Entry) error {
	tag, ok := entry.Data[tagField].(string)
	if !ok {
		return nil
	}
	delete(entry.Data, tagField)
	entry.Message = "[" + tag + "]: " + strings.TrimPrefix(entry.Message, tag+": ")
	return nil
}
