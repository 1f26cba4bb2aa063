// Package fakedata は bxcodec/faker を使って氏名や文章のダミー値を供給します。
package fakedata

import (
	mathrand "math/rand"
	"strings"

	"github.com/bxcodec/faker/v4"
)

// Provider は seed.Faker の実装です。
type Provider struct{}

// NewProvider は faker のパッケージ共有の乱数源を seed で初期化し、Provider を生成します。
// 同じ seed で作り直せば同じ値の列を返します。
// 乱数源はプロセス全体で共有されるため、複数の Provider を並行して使うと列は再現しません。
func NewProvider(seed uint64) *Provider {
	faker.SetRandomSource(faker.NewSafeSource(mathrand.NewSource(int64(seed))))
	return &Provider{}
}

func (Provider) FirstName() string {
	return faker.FirstName()
}

func (Provider) LastName() string {
	return faker.LastName()
}

func (Provider) Email() string {
	return faker.Email()
}

func (Provider) PhoneNumber() string {
	return faker.Phonenumber()
}

func (Provider) Sentence() string {
	return faker.Sentence()
}

// Words は n 語をスペース区切りで返します。
func (Provider) Words(n int) string {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, faker.Word())
	}
	return strings.Join(words, " ")
}

// Paragraph は sentences 文からなる段落を返します。
func (p Provider) Paragraph(sentences int) string {
	parts := make([]string, 0, sentences)
	for i := 0; i < sentences; i++ {
		parts = append(parts, p.Sentence())
	}
	return strings.Join(parts, " ")
}
