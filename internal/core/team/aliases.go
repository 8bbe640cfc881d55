package team

// Aliases maps alternate spellings to canonical team names. Keys are in
// normalized form (lowercase, no diacritics) because lookup happens after
// stripping. Covers the spellings seen across historical NHL exports.
var Aliases = map[string]string{
	// Atlantic
	"montreal": "montreal canadiens", "habs": "montreal canadiens", "canadiens": "montreal canadiens",
	"toronto": "toronto maple leafs", "leafs": "toronto maple leafs", "maple leafs": "toronto maple leafs",
	"boston": "boston bruins", "bruins": "boston bruins",
	"buffalo": "buffalo sabres", "sabres": "buffalo sabres",
	"ottawa": "ottawa senators", "sens": "ottawa senators", "senators": "ottawa senators",
	"detroit": "detroit red wings", "red wings": "detroit red wings", "wings": "detroit red wings",
	"tampa bay": "tampa bay lightning", "tampa": "tampa bay lightning", "tb lightning": "tampa bay lightning", "lightning": "tampa bay lightning",
	"florida": "florida panthers", "panthers": "florida panthers",

	// Metropolitan
	"ny rangers": "new york rangers", "nyr": "new york rangers", "rangers": "new york rangers",
	"ny islanders": "new york islanders", "nyi": "new york islanders", "islanders": "new york islanders",
	"new jersey": "new jersey devils", "nj devils": "new jersey devils", "devils": "new jersey devils",
	"philadelphia": "philadelphia flyers", "flyers": "philadelphia flyers",
	"pittsburgh": "pittsburgh penguins", "pens": "pittsburgh penguins", "penguins": "pittsburgh penguins",
	"washington": "washington capitals", "caps": "washington capitals", "capitals": "washington capitals",
	"carolina": "carolina hurricanes", "canes": "carolina hurricanes", "hurricanes": "carolina hurricanes",
	"columbus": "columbus blue jackets", "cbj": "columbus blue jackets", "blue jackets": "columbus blue jackets",

	// Central
	"chicago": "chicago blackhawks", "blackhawks": "chicago blackhawks",
	"st louis": "st. louis blues", "st. louis": "st. louis blues", "blues": "st. louis blues",
	"minnesota": "minnesota wild", "wild": "minnesota wild",
	"nashville": "nashville predators", "preds": "nashville predators", "predators": "nashville predators",
	"dallas": "dallas stars", "stars": "dallas stars",
	"winnipeg": "winnipeg jets", "jets": "winnipeg jets",
	"colorado": "colorado avalanche", "avs": "colorado avalanche", "avalanche": "colorado avalanche",

	// Pacific
	"vegas": "vegas golden knights", "las vegas": "vegas golden knights", "vgk": "vegas golden knights", "golden knights": "vegas golden knights",
	"san jose": "san jose sharks", "sharks": "san jose sharks",
	"los angeles": "los angeles kings", "la kings": "los angeles kings", "kings": "los angeles kings",
	"anaheim": "anaheim ducks", "ducks": "anaheim ducks", "mighty ducks": "anaheim ducks",
	"calgary": "calgary flames", "flames": "calgary flames",
	"edmonton": "edmonton oilers", "oilers": "edmonton oilers",
	"vancouver": "vancouver canucks", "canucks": "vancouver canucks",
	"seattle": "seattle kraken", "kraken": "seattle kraken",

	// Relocations and rebrands
	"arizona": "utah hockey club", "arizona coyotes": "utah hockey club",
	"phoenix": "utah hockey club", "phoenix coyotes": "utah hockey club", "coyotes": "utah hockey club",
	"utah": "utah hockey club", "utah hc": "utah hockey club", "utah mammoth": "utah hockey club",
	"atlanta thrashers": "winnipeg jets", "thrashers": "winnipeg jets",
}
