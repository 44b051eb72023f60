package warmtransfer

import (
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
)

// Help generates the example environment settings output for the
// service, covering both the HTTP runtime and the transfer API client.
func Help() string {
	rtGrp, _ := settings.GroupFromComponent(&runhttp.Component{})
	apiGrp, _ := settings.GroupFromComponent(&TransferAPIComponent{})
	return settings.ExampleEnvGroups([]settings.Group{&settings.SettingGroup{
		NameValue:   settingsPrefix,
		GroupValues: []settings.Group{rtGrp, apiGrp},
	}})
}
