package gen

import "github.com/syssam/cppent/compiler/load"

// MSupplierSchema returns the supplier master entity. It is the reference
// configuration instance: the identity field, the duplicate check on
// kodeSupplier, the hydrate mapping and the messages all spell out what the
// defaults derive.
func MSupplierSchema() *load.Schema {
	kode := load.NewField("kodeSupplier", "string")
	kode.Unique = true
	return &load.Schema{
		Name: "MSupplier",
		Fields: []*load.Field{
			load.NewField("idMSupplier", "int"),
			kode,
			load.NewField("namaSupplier", "string"),
			load.NewField("alamat", "string"),
			load.NewField("kota", "string"),
			load.NewField("noTelepon", "string"),
			load.NewField("timeUpdate", "datetime"),
		},
		Identity:   "idMSupplier",
		Table:      "msupplier",
		LastUpdate: DefaultLastUpdate,
		Audit:      &load.Audit{Member: DefaultAuditMember, Key: DefaultAuditKey},
		Hydrate: load.ParseHydrate(`kodeSupplier => KodeSupplier
namaSupplier => NamaSupplier
alamat => Alamat
kota => Kota
noTelepon => NoTelepon`),
		Procedures: &load.Procedures{
			Insert: "IsiMSupplier",
			Update: "UbahMSupplier",
			Delete: "HapusMSupplier",
		},
		Messages: &load.Messages{
			LoadByID:        "error find by id {entity} entity ",
			LoadFromDataset: "Gagal load {entity} dari dataset ",
			Insert:          "Gagal isi mSupplier ",
			Update:          "Gagal ubah mSupplier ",
			Delete:          "Gagal hapus mSupplier ",
			Required:        "{label} tidak boleh kosong",
			Duplicate:       "{label} {value} sudah ada",
			NotFound:        "{field} tidak ditemukan",
		},
	}
}
