package header

import (
	"strings"
	"sync/atomic"
)

const (
	DefaultHeaderPrefix = "X-App"
	DefaultAlertPrefix  = "app"
)

// Builder builds notification headers for one deployment. HeaderPrefix
// starts every header name, AlertPrefix starts every entity alert key.
// Header names end in -Alert, -Error and -Params unless LowercaseNames is
// set, which gives -alert, -error and -params as older clients expect.
type Builder struct {
	HeaderPrefix   string
	AlertPrefix    string
	LowercaseNames bool
}

var defaultBuilder atomic.Value

func init() {
	defaultBuilder.Store(NewBuilder(DefaultHeaderPrefix, DefaultAlertPrefix))
}

func NewBuilder(headerPrefix, alertPrefix string) Builder {
	if headerPrefix == "" {
		headerPrefix = DefaultHeaderPrefix
	}
	if alertPrefix == "" {
		alertPrefix = DefaultAlertPrefix
	}
	return Builder{HeaderPrefix: headerPrefix, AlertPrefix: alertPrefix}
}

func Default() Builder {
	return defaultBuilder.Load().(Builder)
}

// SetDefault replaces the builder used by the package level functions.
func SetDefault(b Builder) {
	nb := NewBuilder(b.HeaderPrefix, b.AlertPrefix)
	nb.LowercaseNames = b.LowercaseNames
	defaultBuilder.Store(nb)
}

func (b Builder) AlertHeader() string {
	return b.name("Alert")
}

func (b Builder) ErrorHeader() string {
	return b.name("Error")
}

func (b Builder) ParamsHeader() string {
	return b.name("Params")
}

func (b Builder) name(suffix string) string {
	if b.LowercaseNames {
		suffix = strings.ToLower(suffix)
	}
	return b.HeaderPrefix + "-" + suffix
}

func (b Builder) CreateAlert(message, param string) Set {
	return Set{
		{Name: b.AlertHeader(), Value: message},
		{Name: b.ParamsHeader(), Value: param},
	}
}

func (b Builder) CreateEntityCreationAlert(entityName, param string) Set {
	return b.CreateAlert(b.entityKey(entityName, "created"), param)
}

func (b Builder) CreateEntityUpdateAlert(entityName, param string) Set {
	return b.CreateAlert(b.entityKey(entityName, "updated"), param)
}

func (b Builder) CreateEntityDeletionAlert(entityName, param string) Set {
	return b.CreateAlert(b.entityKey(entityName, "deleted"), param)
}

// CreateFailureAlert reports a failure on entityName. defaultMessage is not
// written to the headers; callers that want it on the wire put it in the body.
func (b Builder) CreateFailureAlert(entityName, errorKey, defaultMessage string) Set {
	return Set{
		{Name: b.ErrorHeader(), Value: "error." + errorKey},
		{Name: b.ParamsHeader(), Value: entityName},
	}
}

func (b Builder) entityKey(entityName, event string) string {
	return b.AlertPrefix + "." + entityName + "." + event
}

func CreateAlert(message, param string) Set {
	return Default().CreateAlert(message, param)
}

func CreateEntityCreationAlert(entityName, param string) Set {
	return Default().CreateEntityCreationAlert(entityName, param)
}

func CreateEntityUpdateAlert(entityName, param string) Set {
	return Default().CreateEntityUpdateAlert(entityName, param)
}

func CreateEntityDeletionAlert(entityName, param string) Set {
	return Default().CreateEntityDeletionAlert(entityName, param)
}

func CreateFailureAlert(entityName, errorKey, defaultMessage string) Set {
	return Default().CreateFailureAlert(entityName, errorKey, defaultMessage)
}
