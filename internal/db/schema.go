package db

const (
	tableGenerationLog = "generation_log"
	tableNameCache     = "name_cache"
)

// SchemaSQL defines the generation history tables.
const SchemaSQL = `
    -- ==========================================================================
    -- GENERATION LOG (one record per generation run)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS generation_log SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS keyword ON generation_log TYPE string;
    DEFINE FIELD IF NOT EXISTS settings ON generation_log TYPE object FLEXIBLE;
    DEFINE FIELD IF NOT EXISTS result_count ON generation_log TYPE int;
    DEFINE FIELD IF NOT EXISTS source ON generation_log TYPE string
        ASSERT $value IN ["local", "ai", "mixed"];
    DEFINE FIELD IF NOT EXISTS created ON generation_log TYPE datetime DEFAULT time::now();

    DEFINE INDEX IF NOT EXISTS generation_log_keyword ON generation_log FIELDS keyword;
    DEFINE INDEX IF NOT EXISTS generation_log_created ON generation_log FIELDS created;

    -- ==========================================================================
    -- NAME CACHE (record key is the domain label of the name)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS name_cache SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS name ON name_cache TYPE string;
    DEFINE FIELD IF NOT EXISTS keyword ON name_cache TYPE string;
    DEFINE FIELD IF NOT EXISTS industry ON name_cache TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS style ON name_cache TYPE string;
    DEFINE FIELD IF NOT EXISTS score ON name_cache TYPE int;
    DEFINE FIELD IF NOT EXISTS source ON name_cache TYPE string
        ASSERT $value IN ["local", "ai"];
    DEFINE FIELD IF NOT EXISTS created ON name_cache TYPE datetime DEFAULT time::now();

    DEFINE INDEX IF NOT EXISTS name_cache_keyword ON name_cache FIELDS keyword;
    DEFINE INDEX IF NOT EXISTS name_cache_industry ON name_cache FIELDS industry;
`
