package function

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// LambdaQuery adapts the query parameters of an API Gateway proxy event.
type LambdaQuery struct {
	Single map[string]string
	Multi  map[string][]string
}

// First returns the first value of key. Multi-value parameters win since
// they keep every occurrence in request order.
func (q LambdaQuery) First(key string) (string, bool) {
	if values, ok := q.Multi[key]; ok && len(values) > 0 {
		return values[0], true
	}
	value, ok := q.Single[key]
	return value, ok
}

// HandleLambda is the AWS Lambda entry point, to be passed to lambda.Start.
// It never returns an error: every failure is reported as InvalidInputBody.
func (f *Function) HandleLambda(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := f.Respond(LambdaQuery{
		Single: event.QueryStringParameters,
		Multi:  event.MultiValueQueryStringParameters,
	})

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
		Body:       body,
	}, nil
}
