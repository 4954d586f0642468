package steps

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	response, err := fc.apiDriver.GetHealthz()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldContainStatusInformation() error {
	var data map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &data))

	fc.require.Equal("success", data["status"])
	fc.require.NotEmpty(data["VERSION"], "VERSION should be present")
	fc.require.NotEmpty(data["COMMIT_HASH"], "COMMIT_HASH should be present")
	fc.require.NotEmpty(data["NODE_ID"], "NODE_ID should be present")
	return nil
}
