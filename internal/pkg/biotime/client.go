package biotime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/supremeauto/attendance-report-go/internal/config"
	"github.com/supremeauto/attendance-report-go/internal/domain/employee"
	"github.com/supremeauto/attendance-report-go/internal/domain/punch"
)

const timeLayout = "2006-01-02 15:04:05"

// Client talks to the BioTime device REST API. Collections come back as
// {data: [...], next: ...} envelopes behind HTTP basic auth; Next is empty on
// the last page. Client implements both punch.Source and employee.Source.
type Client struct {
	httpClient  *http.Client
	punchURL    string
	employeeURL string
	username    string
	password    string
}

func NewClient(cfg config.BioTimeConfig) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		punchURL:    cfg.PunchURL,
		employeeURL: cfg.EmployeeURL,
		username:    cfg.Username,
		password:    cfg.Password,
	}
}

type envelope struct {
	Data []json.RawMessage `json:"data"`
	Next string            `json:"next"`
}

type punchRow struct {
	EmpCode   string `json:"emp_code"`
	PunchTime string `json:"punch_time"`
}

type employeeRow struct {
	EmpCode    string `json:"emp_code"`
	FirstName  string `json:"first_name"`
	Department struct {
		DeptName *string `json:"dept_name"`
	} `json:"department"`
	Area []struct {
		AreaCode *string `json:"area_code"`
		AreaName *string `json:"area_name"`
	} `json:"area"`
}

// Events implements punch.Source. Rows with timestamps the device mangled are
// logged and skipped; such a row cannot be bucketed to a day. A mid-pagination
// failure returns the pages fetched so far together with the error, so the
// pipeline can degrade instead of aborting.
func (c *Client) Events(ctx context.Context, start, end time.Time) ([]punch.Event, error) {
	var events []punch.Event
	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("start_time", start.Format(timeLayout))
		params.Set("end_time", end.Format(timeLayout))
		params.Set("page", strconv.Itoa(page))

		env, err := c.getPage(ctx, c.punchURL, params)
		if err != nil {
			return events, fmt.Errorf("%w: page %d: %v", punch.ErrEventsUnavailable, page, err)
		}
		if len(env.Data) == 0 {
			break
		}
		for _, raw := range env.Data {
			var row punchRow
			if err := json.Unmarshal(raw, &row); err != nil {
				slog.Warn("skipping malformed punch row", "error", err)
				continue
			}
			ts, err := time.Parse(timeLayout, row.PunchTime)
			if err != nil {
				slog.Warn("skipping punch with unreadable timestamp",
					"emp_code", row.EmpCode, "punch_time", row.PunchTime)
				continue
			}
			events = append(events, punch.Event{EmpCode: row.EmpCode, Timestamp: ts})
		}
		if env.Next == "" {
			break
		}
	}
	return events, nil
}

// Roster implements employee.Source. Only the first area assignment is kept,
// matching what the report prints.
func (c *Client) Roster(ctx context.Context) ([]employee.Record, error) {
	var roster []employee.Record
	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("page", strconv.Itoa(page))

		env, err := c.getPage(ctx, c.employeeURL, params)
		if err != nil {
			return roster, fmt.Errorf("%w: page %d: %v", employee.ErrRosterUnavailable, page, err)
		}
		if len(env.Data) == 0 {
			break
		}
		for _, raw := range env.Data {
			var row employeeRow
			if err := json.Unmarshal(raw, &row); err != nil {
				slog.Warn("skipping malformed employee row", "error", err)
				continue
			}
			rec := employee.Record{
				EmpCode:  row.EmpCode,
				EmpName:  row.FirstName,
				DeptName: row.Department.DeptName,
			}
			if len(row.Area) > 0 {
				rec.AreaCode = row.Area[0].AreaCode
				rec.AreaName = row.Area[0].AreaName
			}
			roster = append(roster, rec)
		}
		if env.Next == "" {
			break
		}
	}
	return roster, nil
}

func (c *Client) getPage(ctx context.Context, baseURL string, params url.Values) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	return &env, nil
}
