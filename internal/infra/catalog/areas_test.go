//go:build unit

package catalog

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func TestLoadAreaDirectory(t *testing.T) {
	t.Run("組み込みのエリア一覧", func(t *testing.T) {
		dir, err := LoadAreaDirectory("")
		require.NoError(t, err)

		areas := dir.Areas()
		require.Len(t, areas, 27)
		assert.Equal(t, "新宿", areas[0])
		assert.Equal(t, "町田", areas[len(areas)-1])
		assert.Equal(t, "その他", dir.Other())
	})

	t.Run("ファイル指定", func(t *testing.T) {
		path := t.TempDir() + "/areas.yaml"
		require.NoError(t, writeFile(path, "areas: [渋谷, 池袋]\nother: 郊外\n"))

		dir, err := LoadAreaDirectory(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"渋谷", "池袋"}, dir.Areas())
		assert.Equal(t, "郊外", dir.Normalize("町田"))
	})

	t.Run("存在しないファイルはエラー", func(t *testing.T) {
		_, err := LoadAreaDirectory(t.TempDir() + "/missing.yaml")
		assert.Error(t, err)
	})
}
