package serverless

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

func invoke(t *testing.T, body string, b64 bool) events.LambdaFunctionURLResponse {
	t.Helper()
	event := events.LambdaFunctionURLRequest{Body: body}
	if b64 {
		event.Body = base64.StdEncoding.EncodeToString([]byte(body))
		event.IsBase64Encoded = true
	}
	resp, err := Handle(context.Background(), event)
	require.NoError(t, err)
	return resp
}

func TestParseJob(t *testing.T) {
	job, profile, err := ParseJob(`{"structure":"fission","length":7,"width":7,"height":9,"mode":"sodium","profile":"Doubled Steam"}`)
	require.NoError(t, err)

	assert.Equal(t, model.StructureFission, job.Structure)
	assert.Equal(t, model.Dimensions{Length: 7, Width: 7, Height: 9}, job.Dims)
	assert.Equal(t, model.SodiumCooling, job.Cooling)
	assert.Equal(t, "Doubled Steam", profile.Name)
}

func TestParseJobDefaults(t *testing.T) {
	job, profile, err := ParseJob(`{"structure":"boiler","length":5,"width":4,"height":6}`)
	require.NoError(t, err)

	assert.Equal(t, model.DirectHeating, job.Heating)
	assert.Equal(t, model.PhysicsProfiles[0].Name, profile.Name)
}

func TestParseJobErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"not json", `{"structure":`, nil},
		{"unknown structure", `{"structure":"turbine","length":5,"width":4,"height":6}`, model.ErrUnknownMode},
		{"missing width", `{"structure":"boiler","length":5,"height":6}`, nil},
		{"fractional height", `{"structure":"boiler","length":5,"width":4,"height":6.5}`, nil},
		{"string length", `{"structure":"boiler","length":"5","width":4,"height":6}`, nil},
		{"unknown mode", `{"structure":"boiler","length":5,"width":4,"height":6,"mode":"plasma"}`, model.ErrUnknownMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseJob(tt.body)
			require.Error(t, err)
			if tt.want != nil {
				assert.True(t, errors.Is(err, tt.want), err.Error())
			}
		})
	}
}

func TestHandleBoiler(t *testing.T) {
	resp := invoke(t, `{"structure":"boiler","length":5,"width":4,"height":6,"mode":"sodium"}`, false)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])

	body := gjson.Parse(resp.Body)
	assert.True(t, body.Get("feasible").Bool())
	assert.Equal(t, int64(4), body.Get("boiler.spliter_layer").Int())
	assert.Equal(t, int64(2), body.Get("boiler.heating_element").Int())
	assert.Equal(t, int64(640000), body.Get("boiler.production").Int())
	assert.NotEmpty(t, body.Get("plan").String())
}

func TestHandleFissionBase64(t *testing.T) {
	resp := invoke(t, `{"structure":"fission","length":5,"width":5,"height":8}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)

	body := gjson.Parse(resp.Body)
	assert.Equal(t, int64(38), body.Get("fission.assembly_count").Int())
	assert.Equal(t, int64(7), body.Get("fission.removals").Int())
	assert.Equal(t, "[[3,5,5],[5,0,5],[5,5,5]]", body.Get("fission.grid").Raw)
}

func TestHandleRejectsInvalidInput(t *testing.T) {
	resp := invoke(t, `{"structure":"boiler","length":2,"width":4,"height":6}`, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, gjson.Get(resp.Body, "error").String(), model.ErrInvalidDimensions.Error())

	bad := events.LambdaFunctionURLRequest{Body: "%%%", IsBase64Encoded: true}
	resp, err := Handle(context.Background(), bad)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
