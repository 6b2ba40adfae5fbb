package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Under67/stellar-burgers/internal/client/models"
	"github.com/Under67/stellar-burgers/internal/client/store"
	"github.com/stretchr/testify/assert"
)

func TestRenderBuilder_MarksBunEnds(t *testing.T) {
	var st store.State
	st.Catalog.Items = []models.Ingredient{testBun, testSauce}
	st.Orders.BuilderList = []string{"b1", "s1", "zz", "b1"}

	var buf bytes.Buffer
	renderBuilder(&buf, st)
	out := buf.String()

	assert.Contains(t, out, "(top)")
	assert.Contains(t, out, "(bottom)")
	assert.Contains(t, out, "zz (unknown)")
	assert.Contains(t, out, "Total: 220")
	assert.NotContains(t, out, "Choose a bun")
}

func TestRenderBuilder_NoBun(t *testing.T) {
	var st store.State
	st.Catalog.Items = []models.Ingredient{testSauce}
	st.Orders.BuilderList = []string{"s1"}

	var buf bytes.Buffer
	renderBuilder(&buf, st)
	assert.Contains(t, buf.String(), "Choose a bun")
	assert.Contains(t, buf.String(), "Total: 20")
}

func TestRenderFeedBoard_Limit(t *testing.T) {
	feed := store.FeedState{Total: 7, TotalToday: 2}
	for i := 1; i <= 5; i++ {
		feed.Orders = append(feed.Orders, models.Order{Number: i, Status: models.OrderStatusDone})
	}

	var buf bytes.Buffer
	renderFeedBoard(&buf, feed, 3)
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "Ready: 1 2 3", lines[0])
	assert.Equal(t, "In progress: ", lines[1])
}

func TestRenderOrders_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderOrders(&buf, nil)
	assert.Equal(t, "No orders\n", buf.String())
}

func TestRenderCatalog_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderCatalog(&buf, nil, nil)
	assert.Equal(t, "No ingredients loaded\n", buf.String())
}
