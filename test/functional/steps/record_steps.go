package steps

import (
	"fmt"
	"net/http"
)

func (fc *FeatureContext) aRecordExistsWithIdentifierAndName(resource, identifier, name string) error {
	response, err := fc.apiDriver.CreateRecord(resource, map[string]any{
		"identifier": fc.scoped(identifier),
		"name":       name,
	})
	if err != nil {
		return err
	}
	defer response.Body.Close()

	fc.require.Equal(http.StatusCreated, response.StatusCode)
	return nil
}

func (fc *FeatureContext) recordsExist(count int, resource string) error {
	for i := range count {
		if err := fc.aRecordExistsWithIdentifierAndName(resource, fmt.Sprintf("seeded-%d", i), fmt.Sprintf("Seeded %d", i)); err != nil {
			return err
		}
	}
	return nil
}

func (fc *FeatureContext) iCreateARecordWithIdentifierAndName(resource, identifier, name string) error {
	response, err := fc.apiDriver.CreateRecord(resource, map[string]any{
		"identifier": fc.scoped(identifier),
		"name":       name,
	})
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iGetTheRecord(resource, identifier string) error {
	response, err := fc.apiDriver.GetRecord(resource, fc.scoped(identifier))
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iUpdateTheRecordWithName(resource, identifier, name string) error {
	response, err := fc.apiDriver.UpdateRecord(resource, fc.scoped(identifier), map[string]any{
		"identifier": fc.scoped(identifier),
		"name":       name,
	})
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iUpdateTheRecordChangingTheIdentifier(resource, identifier, next string) error {
	response, err := fc.apiDriver.UpdateRecord(resource, fc.scoped(identifier), map[string]any{
		"identifier": fc.scoped(next),
	})
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iListTheRecords(resource string) error {
	response, err := fc.apiDriver.ListRecords(resource, 0, 0)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iListTheRecordsWithPageAndLimit(resource string, page, limit int) error {
	response, err := fc.apiDriver.ListRecords(resource, page, limit)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iRequestTheAnalytics() error {
	response, err := fc.apiDriver.GetAnalytics()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheRecord(identifier string) error {
	var data map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &data))

	fc.require.Equal(fc.scoped(identifier), data["identifier"])
	fc.require.NotEmpty(data["id"])
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) theRecordNameShouldBe(name string) error {
	if fc.responseData == nil {
		fc.require.NoError(fc.decodeBody(fc.response.Body, &fc.responseData))
	}

	fc.require.Equal(name, fc.responseData["name"])
	return nil
}

func (fc *FeatureContext) thePageShouldContainRecordsOutOfAtLeast(count, total int) error {
	var page struct {
		Records      []map[string]any `json:"records"`
		TotalRecords int              `json:"totalRecords"`
	}
	fc.require.NoError(fc.decodeBody(fc.response.Body, &page))

	fc.require.Len(page.Records, count)
	fc.require.GreaterOrEqual(page.TotalRecords, total)
	return nil
}

func (fc *FeatureContext) theAnalyticsShouldCoverTwelveMonths() error {
	var analytics struct {
		Year           int   `json:"year"`
		SubscriberData []int `json:"subscriberData"`
	}
	fc.require.NoError(fc.decodeBody(fc.response.Body, &analytics))

	fc.require.NotZero(analytics.Year)
	fc.require.Len(analytics.SubscriberData, 12)
	return nil
}
