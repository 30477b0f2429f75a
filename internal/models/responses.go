// Package models defines the JSON shapes served by the REST API.
package models

import (
	"time"

	"stationator.nl/internal/clock"
)

// ResponseModel is the envelope around every API response.
type ResponseModel struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Data        any    `json:"data,omitempty"`
}

// ResponseCurrentTime returns the envelope timestamp in Unix milliseconds.
func ResponseCurrentTime(clk clock.Clock) int64 {
	return clk.Now().UnixMilli()
}

// NewOKResponse wraps data in a 200 envelope.
func NewOKResponse(data any, clk clock.Clock) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(clk),
		Text:        "OK",
		Data:        data,
	}
}

// NewErrorResponse builds an error envelope with no data payload.
func NewErrorResponse(code int, text string, clk clock.Clock) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(clk),
		Text:        text,
	}
}

// CurrentTimeData is the payload of the current-time endpoint.
type CurrentTimeData struct {
	Time         int64  `json:"time"`
	ReadableTime string `json:"readableTime"`
}

// NewCurrentTimeData builds the current-time payload from a timestamp.
func NewCurrentTimeData(t time.Time) CurrentTimeData {
	return CurrentTimeData{
		Time:         t.UnixMilli(),
		ReadableTime: t.Format(time.RFC3339),
	}
}
