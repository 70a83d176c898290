package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsZeroArgsImpliesDockerPicker(t *testing.T) {
	plan, err := parseArgs(nil)
	require.NoError(t, err)
	assert.True(t, plan.dockerPicker)
}

func TestParseArgsPositionalPathsAreFileSources(t *testing.T) {
	plan, err := parseArgs([]string{"/var/log/a.log", "/var/log/b.log"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/var/log/a.log", "/var/log/b.log"}, plan.files)
	assert.False(t, plan.dockerPicker)
}

func TestParseArgsDockerWithNameAddsContainer(t *testing.T) {
	plan, err := parseArgs([]string{"--docker", "web"})
	require.NoError(t, err)
	assert.Equal(t, []string{"web"}, plan.containers)
	assert.False(t, plan.dockerPicker)
}

func TestParseArgsDockerWithoutNameOpensPicker(t *testing.T) {
	plan, err := parseArgs([]string{"--docker"})
	require.NoError(t, err)
	assert.True(t, plan.dockerPicker)
	assert.Empty(t, plan.containers)
}

func TestParseArgsDockerFollowedByAnotherFlagOpensPicker(t *testing.T) {
	plan, err := parseArgs([]string{"--docker", "--k8s", "pod-a"})
	require.NoError(t, err)
	assert.True(t, plan.dockerPicker)
	require.Len(t, plan.pods, 1)
	assert.Equal(t, "pod-a", plan.pods[0].pod)
}

func TestParseArgsK8sWithNamespaceAndContainerModifiers(t *testing.T) {
	plan, err := parseArgs([]string{"--k8s", "pod-a", "-n", "staging", "-c", "web"})
	require.NoError(t, err)
	require.Len(t, plan.pods, 1)
	assert.Equal(t, podSpec{pod: "pod-a", namespace: "staging", container: "web"}, plan.pods[0])
}

func TestParseArgsK8sModifiersAnyOrder(t *testing.T) {
	plan, err := parseArgs([]string{"--k8s", "pod-a", "-c", "web", "-n", "staging"})
	require.NoError(t, err)
	require.Len(t, plan.pods, 1)
	assert.Equal(t, podSpec{pod: "pod-a", namespace: "staging", container: "web"}, plan.pods[0])
}

func TestParseArgsK8sWithoutNameOpensPicker(t *testing.T) {
	plan, err := parseArgs([]string{"--k8s"})
	require.NoError(t, err)
	assert.True(t, plan.k8sPicker)
	assert.Empty(t, plan.pods)
}

func TestParseArgsOrphanModifierIsAnError(t *testing.T) {
	_, err := parseArgs([]string{"-n", "staging"})
	assert.Error(t, err)
}

func TestParseArgsSSHRequiresUserHostAndPath(t *testing.T) {
	plan, err := parseArgs([]string{"--ssh", "deploy@host1", "/var/log/app.log"})
	require.NoError(t, err)
	require.Len(t, plan.remotes, 1)
	assert.Equal(t, remoteSpec{userHost: "deploy@host1", path: "/var/log/app.log"}, plan.remotes[0])
}

func TestParseArgsSSHMissingPathIsAnError(t *testing.T) {
	_, err := parseArgs([]string{"--ssh", "deploy@host1"})
	assert.Error(t, err)
}

func TestParseArgsAllSetsAllFlag(t *testing.T) {
	plan, err := parseArgs([]string{"--all"})
	require.NoError(t, err)
	assert.True(t, plan.all)
}

func TestParseArgsUnknownFlagIsAnError(t *testing.T) {
	_, err := parseArgs([]string{"--bogus"})
	assert.Error(t, err)
}

func TestParseArgsHelpFlag(t *testing.T) {
	plan, err := parseArgs([]string{"--help"})
	require.NoError(t, err)
	assert.True(t, plan.help)
}

func TestParseArgsMixedSourceKinds(t *testing.T) {
	plan, err := parseArgs([]string{
		"/var/log/app.log",
		"--docker", "web",
		"--k8s", "worker", "-n", "prod",
		"--ssh", "ops@bastion", "/var/log/sys.log",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/var/log/app.log"}, plan.files)
	assert.Equal(t, []string{"web"}, plan.containers)
	require.Len(t, plan.pods, 1)
	assert.Equal(t, "worker", plan.pods[0].pod)
	assert.Equal(t, "prod", plan.pods[0].namespace)
	require.Len(t, plan.remotes, 1)
}
