package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-portal/internal/model"
	"github.com/jwalitptl/clinic-portal/pkg/apperror"
)

// Transport is the portal's contract with the clinic API. Absent filter
// values are nil, never ""; they travel as literal "null" path segments,
// which is what the deployed backend routes on.
type Transport interface {
	FetchCatalog(ctx context.Context) ([]model.Doctor, error)
	FetchFiltered(ctx context.Context, f model.DoctorFilter) ([]model.Doctor, error)
	CreateDoctor(ctx context.Context, payload CreateDoctorPayload, token string) Result
	DeleteDoctor(ctx context.Context, id model.ID, token string) Result
	FetchAppointments(ctx context.Context, f model.ScheduleFilter, token string) ([]model.Appointment, error)
	FetchPatientProfile(ctx context.Context, token string) (*model.Patient, error)
}

// CreateDoctorPayload is the creation body. The write key is
// "specialization" while reads come back as "specialty"; the deployed
// backend expects exactly these names.
type CreateDoctorPayload struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Password       string   `json:"password"`
	Specialization string   `json:"specialization"`
	AvailableTimes []string `json:"availableTimes"`
}

// Default messages mirrored from the API's own fallbacks.
const (
	msgDeleteOK     = "Doctor deleted successfully."
	msgDeleteFail   = "Failed to delete doctor. Please try again later."
	msgSaveOK       = "Doctor saved successfully."
	msgSaveFail     = "Failed to save doctor. Please try again."
	nullPathSegment = "null"
)

// Client talks to the clinic API over HTTP.
type Client struct {
	base   string
	http   *http.Client
	logger zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   &http.Client{Timeout: timeout},
		logger: logger.With().Str("component", "backend").Logger(),
	}
}

func seg(v *string) string {
	if v == nil {
		return nullPathSegment
	}
	return url.PathEscape(*v)
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, apperror.Transport("failed to build request", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperror.Transport("request failed", err)
	}
	return resp, nil
}

func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.Transport("failed to decode response", err)
	}
	return nil
}

// FetchCatalog returns the full doctor directory.
func (c *Client) FetchCatalog(ctx context.Context) ([]model.Doctor, error) {
	resp, err := c.get(ctx, "/doctor")
	if err != nil {
		c.logger.Error().Err(err).Msg("catalog fetch failed")
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		err := apperror.RemoteRejected(fmt.Sprintf("catalog fetch returned %d", resp.StatusCode), nil)
		c.logger.Error().Int("status", resp.StatusCode).Msg("catalog fetch rejected")
		return nil, err
	}
	var body struct {
		Doctors []model.Doctor `json:"doctors"`
	}
	if err := decode(resp, &body); err != nil {
		c.logger.Error().Err(err).Msg("catalog decode failed")
		return nil, err
	}
	return body.Doctors, nil
}

// FetchFiltered returns the doctors matching the filter triple. A non-2xx
// response is a remote rejection carrying no doctors; the caller renders it
// like an empty match.
func (c *Client) FetchFiltered(ctx context.Context, f model.DoctorFilter) ([]model.Doctor, error) {
	path := fmt.Sprintf("/doctor/filter/%s/%s/%s", seg(f.Name), seg(f.Time), seg(f.Specialty))
	resp, err := c.get(ctx, path)
	if err != nil {
		c.logger.Error().Err(err).Msg("filtered fetch failed")
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		c.logger.Warn().Int("status", resp.StatusCode).Msg("filtered fetch rejected")
		return nil, apperror.RemoteRejected(fmt.Sprintf("filter returned %d", resp.StatusCode), nil)
	}
	var body struct {
		Doctors []model.Doctor `json:"doctors"`
	}
	if err := decode(resp, &body); err != nil {
		c.logger.Error().Err(err).Msg("filtered decode failed")
		return nil, err
	}
	return body.Doctors, nil
}

type messageBody struct {
	Message string `json:"message"`
}

// CreateDoctor posts a new doctor. The token rides in the path, matching
// the deployed route shape.
func (c *Client) CreateDoctor(ctx context.Context, payload CreateDoctorPayload, token string) Result {
	raw, err := json.Marshal(payload)
	if err != nil {
		return failed(msgSaveFail, err)
	}
	u := fmt.Sprintf("%s/doctor/save/%s", c.base, url.PathEscape(token))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(raw))
	if err != nil {
		return failed(msgSaveFail, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("doctor create failed")
		return failed(msgSaveFail, err)
	}
	var body messageBody
	if err := decode(resp, &body); err != nil {
		c.logger.Error().Err(err).Msg("doctor create decode failed")
		return failed(msgSaveFail, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return rejected(orDefault(body.Message, msgSaveFail), nil)
	}
	return succeeded(orDefault(body.Message, msgSaveOK))
}

// DeleteDoctor removes a doctor by id.
func (c *Client) DeleteDoctor(ctx context.Context, id model.ID, token string) Result {
	u := fmt.Sprintf("%s/doctor/delete/%s/%s", c.base, url.PathEscape(id.String()), url.PathEscape(token))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return failed(msgDeleteFail, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("doctor delete failed")
		return failed(msgDeleteFail, err)
	}
	var body messageBody
	if err := decode(resp, &body); err != nil {
		c.logger.Error().Err(err).Msg("doctor delete decode failed")
		return failed(msgDeleteFail, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return rejected(orDefault(body.Message, msgDeleteFail), nil)
	}
	return succeeded(orDefault(body.Message, msgDeleteOK))
}

// FetchAppointments returns the records for one schedule date, optionally
// narrowed by patient name. A 404 means no appointments, not an error.
func (c *Client) FetchAppointments(ctx context.Context, f model.ScheduleFilter, token string) ([]model.Appointment, error) {
	path := fmt.Sprintf("/appointments/%s/%s/%s",
		url.PathEscape(f.Date), seg(f.PatientName), url.PathEscape(token))
	resp, err := c.get(ctx, path)
	if err != nil {
		c.logger.Error().Err(err).Msg("appointments fetch failed")
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		c.logger.Error().Int("status", resp.StatusCode).Msg("appointments fetch rejected")
		return nil, apperror.RemoteRejected(fmt.Sprintf("appointments returned %d", resp.StatusCode), nil)
	}
	var body struct {
		Appointments []model.Appointment `json:"appointments"`
	}
	if err := decode(resp, &body); err != nil {
		c.logger.Error().Err(err).Msg("appointments decode failed")
		return nil, err
	}
	return body.Appointments, nil
}

// FetchPatientProfile loads the profile bound to the session token.
func (c *Client) FetchPatientProfile(ctx context.Context, token string) (*model.Patient, error) {
	resp, err := c.get(ctx, "/patient/"+url.PathEscape(token))
	if err != nil {
		c.logger.Error().Err(err).Msg("patient profile fetch failed")
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		c.logger.Error().Int("status", resp.StatusCode).Msg("patient profile rejected")
		return nil, apperror.RemoteRejected(fmt.Sprintf("patient profile returned %d", resp.StatusCode), nil)
	}
	var body struct {
		Patient *model.Patient `json:"patient"`
	}
	if err := decode(resp, &body); err != nil {
		c.logger.Error().Err(err).Msg("patient profile decode failed")
		return nil, err
	}
	if body.Patient == nil {
		return nil, apperror.RemoteRejected("patient profile missing from response", nil)
	}
	return body.Patient, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
