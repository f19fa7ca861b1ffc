package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrieveRanksByOverlap(t *testing.T) {
	svc := NewRetrievalService(testDataset())

	docs := svc.Retrieve("monkeys on the hill with painted eyes", 3)
	require.NotEmpty(t, docs)
	assert.Equal(t, "Swayambhunath (Monkey Temple)", docs[0].Place)
}

func TestRetrieveNoOverlapYieldsNothing(t *testing.T) {
	svc := NewRetrievalService(testDataset())

	assert.Empty(t, svc.Retrieve("zzz qqq xyzzy", 3))
	assert.Empty(t, svc.Retrieve("", 3))
}

func TestRetrieveRespectsK(t *testing.T) {
	svc := NewRetrievalService(testDataset())

	docs := svc.Retrieve("the old city temples and the valley", 2)
	assert.LessOrEqual(t, len(docs), 2)

	assert.Empty(t, svc.Retrieve("temples", 0))
}

func TestContextTextFormat(t *testing.T) {
	svc := NewRetrievalService(testDataset())

	text := svc.ContextText("prayer wheels stupa", 1)
	require.NotEmpty(t, text)
	assert.True(t, strings.HasPrefix(text, "[A white dome at the center of a world]\n"))
	assert.Contains(t, text, "prayer wheels")

	assert.Empty(t, svc.ContextText("xyzzy", 3))
}
