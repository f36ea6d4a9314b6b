// Package sanitizer cleans HTML in translated messages with bluemonday
// policies.
package sanitizer
