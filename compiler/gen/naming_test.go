package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"kode supplier", "Kode Supplier"},
		{"KODE SUPPLIER", "Kode Supplier"},
		{"idMSupplier", "Idmsupplier"},
		{"  nama   supplier ", "Nama Supplier"},
		{"x", "X"},
		{"élan vital", "Élan Vital"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleCase(tt.in))
		})
	}
}

func TestBindParamName(t *testing.T) {
	assert.Equal(t, "KODESUPPLIER", BindParamName("kodeSupplier"))
	assert.Equal(t, "", BindParamName(""))
}

func TestNamingRules(t *testing.T) {
	assert.Equal(t, "kodeSupplier", memberName("kodeSupplier"))
	assert.Equal(t, "getKodeSupplier", getterName("kodeSupplier"))
	assert.Equal(t, "setKodeSupplier", setterName("kodeSupplier"))
	assert.Equal(t, "validateKodeSupplier", validatorName("kodeSupplier"))
	assert.Equal(t, "kodesupplier", lookupParam("kodeSupplier"))
	assert.Equal(t, "Idmsupplier", methodSuffix("idMSupplier"))
	assert.Equal(t, "", pascal(""))
	assert.Equal(t, "No Telepon", humanize("noTelepon"))
	assert.Equal(t, "Kode Supplier", humanize("kodeSupplier"))
	assert.Equal(t, "Alamat", humanize("alamat"))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `""`, quote(""))
	assert.Equal(t, `"Gagal isi MSupplier "`, quote("Gagal isi MSupplier "))
	assert.Equal(t, `"a \"b\" \\ c\n\t"`, quote("a \"b\" \\ c\n\t"))
}

func TestExpand(t *testing.T) {
	vars := map[string]string{"entity": "MSupplier", "label": "Kode Supplier"}
	assert.Equal(t, "Gagal isi MSupplier ", expand("Gagal isi {entity} ", vars))
	assert.Equal(t, "Kode Supplier {value} sudah ada", expand("{label} {value} sudah ada", vars))
	assert.Equal(t, "plain", expand("plain", vars))
}

func TestDuplicateExpr(t *testing.T) {
	assert.Equal(t, `"Kode Supplier " + kodeSupplier + " sudah ada"`, duplicateExpr("Kode Supplier {value} sudah ada", "kodeSupplier"))
	assert.Equal(t, `"Duplicate: " + kode`, duplicateExpr("Duplicate: {value}", "kode"))
	assert.Equal(t, `"already exists"`, duplicateExpr("already exists", "kode"))
}
