package store

// Backend names accepted by the store factory.
const (
	BackendSheets = "sheets"
	BackendXlsx   = "xlsx"
	BackendMemory = "memory"
)

// Config holds configuration for the spreadsheet store.
type Config struct {
	// Backend selects the persistence backend (sheets, xlsx, memory).
	Backend string `mapstructure:"backend" default:"sheets"`
	// CacheTTLSeconds is the read-cache TTL; 0 disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30"`
	// InventoryTable is the tab holding the inventory ledger.
	InventoryTable string `mapstructure:"inventory_table" default:"Inventory"`
	// OrdersTable is the tab holding the order ledger.
	OrdersTable string `mapstructure:"orders_table" default:"Orders"`
	// MapTable is the tab holding the product-code to stock-unit mapping.
	MapTable string `mapstructure:"map_table" default:"Map"`
	// MetaTable is the tab holding the last_updated metadata cell.
	MetaTable string `mapstructure:"meta_table" default:"Meta"`
	// Timezone is the display timezone for timestamps.
	Timezone string `mapstructure:"timezone" default:"America/Chicago"`
	// Sheet holds Google Sheets backend settings.
	Sheet SheetConfig `mapstructure:"sheet"`
	// Xlsx holds workbook backend settings.
	Xlsx XlsxConfig `mapstructure:"xlsx"`
}

// SheetConfig holds configuration for the Google Sheets backend.
type SheetConfig struct {
	// SpreadsheetID is the long ID from the sheet URL.
	SpreadsheetID string `mapstructure:"spreadsheet_id" default:""`
	// CredentialsFile is the path to the service-account JSON key.
	CredentialsFile string `mapstructure:"credentials_file" default:"credentials.json"`
}

// XlsxConfig holds configuration for the xlsx workbook backend.
// When Endpoint is set the workbook lives in an object-storage bucket,
// otherwise it is read and written at Path on local disk.
type XlsxConfig struct {
	// Path is the local workbook path.
	Path string `mapstructure:"path" default:"inventory.xlsx"`
	// Endpoint is the object storage endpoint (empty for local disk).
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for object storage.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for object storage.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use TLS for object storage connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the bucket holding the workbook object.
	Bucket string `mapstructure:"bucket" default:"inventory"`
	// Object is the workbook object name inside the bucket.
	Object string `mapstructure:"object" default:"inventory.xlsx"`
	// TimeoutSeconds is the object storage connection timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
