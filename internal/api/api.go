package api

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

func headers() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET,OPTIONS",
	}
}

func CreateResponse(statusCode int, body interface{}) events.APIGatewayProxyResponse {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       `{"error": "Internal server error encoding response"}`,
			Headers:    headers(),
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Body:       string(jsonBody),
		Headers:    headers(),
	}
}

// Message answers with the capitalised {"Message": ...} body used for the
// request-level 404s.
func Message(statusCode int, msg string) events.APIGatewayProxyResponse {
	return CreateResponse(statusCode, map[string]string{"Message": msg})
}

// Error answers 500 with the fault's own text.
func Error(err error) events.APIGatewayProxyResponse {
	return CreateResponse(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
