package steps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"hubble-workspace/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	apiDriver     *driver.APIDriver
	response      *http.Response
	responseData  map[string]any
	suffix        string
	notifications *websocket.Conn
	require       *require.Assertions
	t             godog.TestingT
}

func NewFeatureContext(baseURL string) *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Step(`^wait for (.*)$`, fc.waitForDuration)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the response should contain status information$`, fc.theResponseShouldContainStatusInformation)

	// Record steps
	ctx.Given(`^a "([^"]*)" record exists with identifier "([^"]*)" and name "([^"]*)"$`, fc.aRecordExistsWithIdentifierAndName)
	ctx.Given(`^(\d+) "([^"]*)" records exist$`, fc.recordsExist)
	ctx.When(`^I create a "([^"]*)" record with identifier "([^"]*)" and name "([^"]*)"$`, fc.iCreateARecordWithIdentifierAndName)
	ctx.When(`^I get the "([^"]*)" record "([^"]*)"$`, fc.iGetTheRecord)
	ctx.When(`^I update the "([^"]*)" record "([^"]*)" with name "([^"]*)"$`, fc.iUpdateTheRecordWithName)
	ctx.When(`^I update the "([^"]*)" record "([^"]*)" changing the identifier to "([^"]*)"$`, fc.iUpdateTheRecordChangingTheIdentifier)
	ctx.When(`^I list the "([^"]*)" records$`, fc.iListTheRecords)
	ctx.When(`^I list the "([^"]*)" records with page (\d+) and limit (\d+)$`, fc.iListTheRecordsWithPageAndLimit)
	ctx.When(`^I request the analytics$`, fc.iRequestTheAnalytics)
	ctx.Then(`^the response should contain the record "([^"]*)"$`, fc.theResponseShouldContainTheRecord)
	ctx.Then(`^the record name should be "([^"]*)"$`, fc.theRecordNameShouldBe)
	ctx.Then(`^the page should contain (\d+) records out of at least (\d+)$`, fc.thePageShouldContainRecordsOutOfAtLeast)
	ctx.Then(`^the analytics should cover twelve months$`, fc.theAnalyticsShouldCoverTwelveMonths)

	// Workspace steps
	ctx.When(`^I list the workspace views$`, fc.iListTheWorkspaceViews)
	ctx.Then(`^the views should include "([^"]*)"$`, fc.theViewsShouldInclude)
	ctx.When(`^I render the "([^"]*)" view with limit (\d+)$`, fc.iRenderTheViewWithLimit)
	ctx.Then(`^the table should have (\d+) rows$`, fc.theTableShouldHaveRows)
	ctx.When(`^I open the "([^"]*)" quick add form$`, fc.iOpenTheQuickAddForm)
	ctx.Then(`^the form should have the field "([^"]*)"$`, fc.theFormShouldHaveTheField)
	ctx.When(`^I submit the "([^"]*)" form with:$`, fc.iSubmitTheFormWith)
	ctx.Then(`^the field "([^"]*)" should report "([^"]*)"$`, fc.theFieldShouldReport)
	ctx.When(`^I open the add dialog$`, fc.iOpenTheAddDialog)
	ctx.Then(`^the add dialog should have the groups "([^"]*)"$`, fc.theAddDialogShouldHaveTheGroups)
	ctx.Given(`^I am connected to the notifications websocket$`, fc.iAmConnectedToTheNotificationsWebsocket)
	ctx.Then(`^I should receive the notification "([^"]*)"$`, fc.iShouldReceiveTheNotification)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		fc.cleanupWebSocket()
		return ctx, err
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.suffix = uuid.NewString()[:8]
}

// scoped makes identifiers unique per scenario so scenarios can share a server.
func (fc *FeatureContext) scoped(identifier string) string {
	return identifier + "-" + fc.suffix
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) cleanupWebSocket() {
	if fc.notifications != nil {
		fc.notifications.Close()
		fc.notifications = nil
	}
}
