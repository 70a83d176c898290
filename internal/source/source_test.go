package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateIdentifierRejectsLeadingDash(t *testing.T) {
	assert.Error(t, ValidateIdentifier("-rf"))
}

func TestValidateIdentifierRejectsEmpty(t *testing.T) {
	assert.Error(t, ValidateIdentifier(""))
}

func TestValidateIdentifierRejectsNonPrintableASCII(t *testing.T) {
	assert.Error(t, ValidateIdentifier("foo\x01bar"))
	assert.Error(t, ValidateIdentifier("café")) // non-ASCII
}

func TestValidateIdentifierAcceptsOrdinaryPaths(t *testing.T) {
	assert.NoError(t, ValidateIdentifier("/var/log/app.log"))
	assert.NoError(t, ValidateIdentifier("my-container_1.2"))
}

func TestContainerAdapterRejectsInvalidName(t *testing.T) {
	a := &ContainerAdapter{Name: "-oops"}
	_, err := a.Start(nil) // nolint:staticcheck // validated before ctx use
	assert.Error(t, err)
}

func TestFileAdapterRejectsEmptyPath(t *testing.T) {
	a := &FileAdapter{}
	_, err := a.Start(nil) // nolint:staticcheck
	assert.Error(t, err)
}

func TestPodAdapterRejectsInvalidNamespace(t *testing.T) {
	a := &PodAdapter{Pod: "web-1", Namespace: "-n"}
	_, err := a.Start(nil) // nolint:staticcheck
	assert.Error(t, err)
}

func TestRemoteAdapterRejectsInvalidUserHost(t *testing.T) {
	a := &RemoteAdapter{UserHost: "-x", Path: "/var/log/syslog"}
	_, err := a.Start(nil) // nolint:staticcheck
	assert.Error(t, err)
}

func TestShellQuoteEscapesSingleQuotes(t *testing.T) {
	assert.Equal(t, `'it'\''s'`, shellQuote("it's"))
}

func TestHostKeyCheckingModeDefaultsToYes(t *testing.T) {
	t.Setenv("BARK_SSH_HOST_KEY_CHECKING", "")
	assert.Equal(t, "yes", hostKeyCheckingMode())
}

func TestHostKeyCheckingModeAcceptsKnownValues(t *testing.T) {
	t.Setenv("BARK_SSH_HOST_KEY_CHECKING", "accept-new")
	assert.Equal(t, "accept-new", hostKeyCheckingMode())
}

func TestHostKeyCheckingModeRejectsUnknownValue(t *testing.T) {
	t.Setenv("BARK_SSH_HOST_KEY_CHECKING", "maybe")
	assert.Equal(t, "yes", hostKeyCheckingMode())
}
