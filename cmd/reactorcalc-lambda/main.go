// reactorcalc-lambda answers layout requests behind an AWS Lambda function URL.
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/piwi3910/ReactorCalc/internal/serverless"
)

func main() {
	lambda.Start(serverless.Handle)
}
