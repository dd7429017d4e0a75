package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateETag_Deterministic(t *testing.T) {
	id := primitive.NewObjectID()
	at := time.Now()

	assert.Equal(t, GenerateETag(id, at), GenerateETag(id, at))
}

func TestGenerateETag_ChangesWithInputs(t *testing.T) {
	id := primitive.NewObjectID()
	at := time.Now()

	assert.NotEqual(t, GenerateETag(id, at), GenerateETag(primitive.NewObjectID(), at))
	assert.NotEqual(t, GenerateETag(id, at), GenerateETag(id, at.Add(time.Second)))
}

func TestGenerateETag_Quoted(t *testing.T) {
	etag := GenerateETag(primitive.NewObjectID(), time.Now())
	assert.True(t, strings.HasPrefix(etag, `"`))
	assert.True(t, strings.HasSuffix(etag, `"`))
}
