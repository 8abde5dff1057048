package service

import (
	"fmt"
	"strings"
)

func exportReadyEmailTemplate(name, downloadURL, format, appName string) (string, string) {
	subject := fmt.Sprintf("Your %s data export is ready", appName)
	body := fmt.Sprintf(`Hi %s,

Your data export (%s) is ready. Download it here:
%s

The link may expire, so download your file soon. You can request a new export anytime in Settings.

Best,
The %s Team`, name, strings.ToUpper(format), downloadURL, appName)

	return subject, body
}

func exportFailedEmailTemplate(name, settingsURL, appName string) (string, string) {
	subject := fmt.Sprintf("Your %s data export could not be created", appName)
	body := fmt.Sprintf(`Hi %s,

Something went wrong while preparing your data export. Please try again:
%s

Best,
The %s Team`, name, settingsURL, appName)

	return subject, body
}
