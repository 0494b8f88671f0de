// Package serverless answers layout requests delivered through a Lambda
// function URL.
package serverless

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/tidwall/gjson"

	"github.com/piwi3910/ReactorCalc/internal/engine"
	"github.com/piwi3910/ReactorCalc/internal/export"
	"github.com/piwi3910/ReactorCalc/internal/model"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type layoutResult struct {
	engine.Result
	Feasible bool   `json:"feasible"`
	Profile  string `json:"profile"`
	Plan     string `json:"plan"`
	TimeMs   int64  `json:"timeMs"`
}

// Handle decodes one request body of the form
//
//	{"structure":"boiler","length":5,"width":4,"height":6,"mode":"direct","profile":"Default"}
//
// and responds with the optimized layout. Invalid input yields a 400.
func Handle(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, "invalid base64 body")
		}
		body = string(decoded)
	}

	job, profile, err := ParseJob(body)
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	res, err := engine.New(profile.Physics).Run(job)
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}

	var plan strings.Builder
	if res.Boiler != nil {
		err = export.WriteBoilerPlan(&plan, *res.Boiler)
	} else if res.Fission != nil {
		err = export.WriteFissionPlan(&plan, *res.Fission)
	}
	if err != nil {
		return errResp(http.StatusInternalServerError, err.Error())
	}

	out := layoutResult{
		Result:   res,
		Feasible: res.Feasible(),
		Profile:  profile.Name,
		Plan:     plan.String(),
		TimeMs:   time.Since(start).Milliseconds(),
	}
	respJSON, err := json.Marshal(out)
	if err != nil {
		return errResp(http.StatusInternalServerError, err.Error())
	}
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(respJSON)}, nil
}

// ParseJob reads a job and its physics profile from a JSON request body.
// Unknown profile names fall back to the default profile.
func ParseJob(body string) (model.Job, model.PhysicsProfile, error) {
	if !gjson.Valid(body) {
		return model.Job{}, model.PhysicsProfile{}, errors.New("invalid JSON body")
	}
	parsed := gjson.Parse(body)

	structure, err := model.ParseStructure(parsed.Get("structure").String())
	if err != nil {
		return model.Job{}, model.PhysicsProfile{}, err
	}

	var sides [3]int
	for i, key := range []string{"length", "width", "height"} {
		v := parsed.Get(key)
		if !v.Exists() {
			return model.Job{}, model.PhysicsProfile{}, fmt.Errorf("missing %s field", key)
		}
		if v.Type != gjson.Number || v.Num != float64(int(v.Num)) {
			return model.Job{}, model.PhysicsProfile{}, fmt.Errorf("%s must be an integer, got %s", key, v.Raw)
		}
		sides[i] = int(v.Int())
	}

	job := model.Job{
		Label:     parsed.Get("label").String(),
		Structure: structure,
		Dims:      model.Dimensions{Length: sides[0], Width: sides[1], Height: sides[2]},
	}
	mode := parsed.Get("mode").String()
	if structure == model.StructureFission {
		job.Cooling, err = model.ParseCoolingMode(mode)
	} else {
		job.Heating, err = model.ParseHeatingMode(mode)
	}
	if err != nil {
		return model.Job{}, model.PhysicsProfile{}, err
	}

	return job, model.GetPhysicsProfile(parsed.Get("profile").String()), nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
