package interfaces

import "github.com/gin-gonic/gin"

// ApplicationContext carries a parsed request body and transport context
// from the route layer into controllers.
type ApplicationContext[T interface{}] struct {
	Ctx    *gin.Context
	Body   *T
	Keys   map[string]any
	Param  map[string]any
	Query  map[string]any
	Header map[string][]string
}

func (ac *ApplicationContext[T]) GetContextData(key string) (any, bool) {
	value, ok := ac.Keys[key]
	return value, ok
}

func (ac *ApplicationContext[T]) GetStringContextData(key string) string {
	value, ok := ac.Keys[key].(string)
	if !ok {
		return ""
	}
	return value
}

func (ac *ApplicationContext[T]) GetStringParameter(key string) string {
	value, ok := ac.Param[key].(string)
	if !ok {
		return ""
	}
	return value
}

func (ac *ApplicationContext[T]) GetHeader(key string) string {
	values, ok := ac.Header[key]
	if !ok || len(values) == 0 {
		return ""
	}
	return values[0]
}
