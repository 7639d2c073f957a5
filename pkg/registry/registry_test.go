package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/schema"
)

func TestDefault_CataloguesCoreKinds(t *testing.T) {
	r := Default()

	for _, kind := range []string{
		"trigger.gmail-watch",
		"trigger.schedule",
		"trigger.webhook",
		"processing.ai-agent",
		"router.branch",
		"action.send-email",
		"action.mysql-query",
		"action.slack-post",
		"error.ignore",
	} {
		_, ok := r.Lookup(kind)
		assert.True(t, ok, "expected kind %s in default catalogue", kind)
	}
}

func TestDefault_GmailWatchDescriptor(t *testing.T) {
	r := Default()

	d, ok := r.Lookup("trigger.gmail-watch")
	require.True(t, ok)

	assert.Equal(t, domain.CategoryTrigger, d.Category)
	assert.Equal(t, "gmail", d.Service)
	assert.True(t, d.NeedsConnection())
	assert.Equal(t, "INBOX", d.Defaults["folder"])
	assert.Equal(t, 10, d.Defaults["maxResults"])
	assert.Equal(t, false, d.Defaults["markAsRead"])
	assert.True(t, d.HasCapability("body"))
	assert.True(t, d.HasCapability("from"))
	assert.False(t, d.HasCapability("response"))
}

func TestDefault_DefaultsConformToParams(t *testing.T) {
	r := Default()

	for _, kind := range r.Kinds() {
		d, _ := r.Lookup(kind)
		if len(d.Defaults) == 0 {
			continue
		}
		err := schema.ValidatePresent(d.Params, d.Defaults)
		assert.NoError(t, err, "defaults of %s must satisfy their own schema", kind)
	}
}

func TestNew_RejectsDuplicateKind(t *testing.T) {
	d := Descriptor{Kind: "trigger.schedule", Category: domain.CategoryTrigger}

	_, err := New(d, d)
	assert.Error(t, err)
}

func TestNew_RejectsUnknownCategory(t *testing.T) {
	_, err := New(Descriptor{Kind: "x", Category: domain.Category("sideways")})
	assert.Error(t, err)
}

func TestByCategory(t *testing.T) {
	r := Default()

	triggers := r.ByCategory(domain.CategoryTrigger)
	require.NotEmpty(t, triggers)
	for _, d := range triggers {
		assert.Equal(t, domain.CategoryTrigger, d.Category)
	}

	handlers := r.ByCategory(domain.CategoryErrorHandler)
	require.Len(t, handlers, 1)
	assert.Equal(t, "error.ignore", handlers[0].Kind)
}

func TestKinds_ReturnsCopy(t *testing.T) {
	r := Default()

	kinds := r.Kinds()
	require.NotEmpty(t, kinds)
	kinds[0] = "mutated"

	assert.NotEqual(t, "mutated", r.Kinds()[0])
}
