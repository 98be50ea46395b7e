package iconfinder

import (
	"strconv"
	"strings"
)

// query accumulates name=value pairs in insertion order. Values are not
// escaped.
type query []string

func (q *query) set(name, value string) {
	*q = append(*q, name+"="+value)
}

func (q *query) setInt(name string, value int) {
	q.set(name, strconv.Itoa(value))
}

func (q *query) optString(name, value string) {
	if value != "" {
		q.set(name, value)
	}
}

func (q *query) optInt(name string, value int) {
	if value != 0 {
		q.setInt(name, value)
	}
}

func (q *query) optBool(name string, value bool) {
	if value {
		q.set(name, "true")
	}
}

func (q query) encode() string {
	if len(q) == 0 {
		return ""
	}
	return "?" + strings.Join(q, "&")
}
