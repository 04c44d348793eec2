// Package utils holds small helpers shared by the transport and storage
// layers: JSON response writing and time-ordered id generation.
package utils
