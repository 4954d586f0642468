package steps

import (
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

func (fc *FeatureContext) iListTheWorkspaceViews() error {
	response, err := fc.apiDriver.ListViews()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theViewsShouldInclude(names string) error {
	var views []struct {
		Name string `json:"name"`
	}
	fc.require.NoError(fc.decodeBody(fc.response.Body, &views))

	listed := make([]string, 0, len(views))
	for _, view := range views {
		listed = append(listed, view.Name)
	}
	for _, name := range strings.Split(names, ",") {
		fc.require.Contains(listed, strings.TrimSpace(name))
	}
	return nil
}

func (fc *FeatureContext) iRenderTheViewWithLimit(view string, limit int) error {
	response, err := fc.apiDriver.RenderView(view, map[string]string{"limit": strconv.Itoa(limit)})
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theTableShouldHaveRows(count int) error {
	var page struct {
		Table struct {
			Rows []map[string]any `json:"rows"`
		} `json:"table"`
	}
	fc.require.NoError(fc.decodeBody(fc.response.Body, &page))

	fc.require.Len(page.Table.Rows, count)
	return nil
}

func (fc *FeatureContext) iOpenTheQuickAddForm(form string) error {
	response, err := fc.apiDriver.OpenForm(form, true)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theFormShouldHaveTheField(identifier string) error {
	var form struct {
		Groups []struct {
			Fields []struct {
				Identifier string `json:"identifier"`
			} `json:"fields"`
		} `json:"groups"`
	}
	fc.require.NoError(fc.decodeBody(fc.response.Body, &form))

	for _, group := range form.Groups {
		for _, field := range group.Fields {
			if field.Identifier == identifier {
				return nil
			}
		}
	}
	fc.require.Failf("field not found", "form has no field %q", identifier)
	return nil
}

func (fc *FeatureContext) iSubmitTheFormWith(form string, table *godog.Table) error {
	values := map[string]any{}
	for _, row := range table.Rows {
		if len(row.Cells) != 2 {
			continue
		}
		values[row.Cells[0].Value] = row.Cells[1].Value
	}

	response, err := fc.apiDriver.SubmitForm(form, values)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theFieldShouldReport(field, message string) error {
	var failure struct {
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	}
	fc.require.NoError(fc.decodeBody(fc.response.Body, &failure))

	fc.require.Equal(message, failure.Fields[field])
	return nil
}

func (fc *FeatureContext) iOpenTheAddDialog() error {
	response, err := fc.apiDriver.GetAddDialog()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theAddDialogShouldHaveTheGroups(titles string) error {
	var groups []struct {
		Title string `json:"title"`
	}
	fc.require.NoError(fc.decodeBody(fc.response.Body, &groups))

	listed := make([]string, 0, len(groups))
	for _, group := range groups {
		listed = append(listed, group.Title)
	}
	expected := strings.Split(titles, ",")
	for i := range expected {
		expected[i] = strings.TrimSpace(expected[i])
	}
	fc.require.Equal(expected, listed)
	return nil
}

func (fc *FeatureContext) iAmConnectedToTheNotificationsWebsocket() error {
	conn, err := fc.apiDriver.ConnectNotifications()
	if err != nil {
		return err
	}
	fc.notifications = conn
	// the server registers the client asynchronously
	time.Sleep(100 * time.Millisecond)
	return nil
}

func (fc *FeatureContext) iShouldReceiveTheNotification(message string) error {
	fc.require.NotNil(fc.notifications, "not connected to the notifications websocket")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		fc.require.NoError(fc.notifications.SetReadDeadline(deadline))

		var notification struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}
		if err := fc.notifications.ReadJSON(&notification); err != nil {
			return err
		}
		if notification.Message == message {
			return nil
		}
	}
	fc.require.Failf("notification not received", "expected %q", message)
	return nil
}
