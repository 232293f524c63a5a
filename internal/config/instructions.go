package config

// gekkoInstructions lists the mnemonics accepted by GNU as for the
// PowerPC 750CL/Gekko target (-mgekko), including branch hint and record
// forms. A statement whose first token is one of these always starts a
// new output line when instruction breaks are enabled.
var gekkoInstructions = []string{
	"add", "add.", "addc", "addc.", "addco", "addco.", "adde", "adde.", "addeo", "addeo.", "addi",
	"addic", "addic.", "addis", "addme", "addme.", "addmeo", "addmeo.", "addo", "addo.", "addze",
	"addze.", "addzeo", "addzeo.", "and", "and.", "andc", "andc.", "andi.", "andis.", "b", "ba", "bc",
	"bc+", "bc-", "bca", "bca+", "bca-", "bcctr", "bcctr+", "bcctr-", "bcctrl", "bcctrl+", "bcctrl-",
	"bcl", "bcl+", "bcl-", "bcla", "bcla+", "bcla-", "bclr", "bclr+", "bclr-", "bclrl", "bclrl+",
	"bclrl-", "bctar+", "bctar-", "bctarl+", "bctarl-", "bctr", "bctrl", "bdnz", "bdnz+", "bdnz-",
	"bdnza", "bdnza+", "bdnza-", "bdnzf", "bdnzf+", "bdnzf-", "bdnzfa", "bdnzfa+", "bdnzfa-",
	"bdnzfl", "bdnzfl+", "bdnzfl-", "bdnzfla", "bdnzfla+", "bdnzfla-", "bdnzflr", "bdnzflr+",
	"bdnzflr-", "bdnzflrl", "bdnzflrl+", "bdnzflrl-", "bdnzl", "bdnzl+", "bdnzl-", "bdnzla",
	"bdnzla+", "bdnzla-", "bdnzlr", "bdnzlr+", "bdnzlr-", "bdnzlrl", "bdnzlrl+", "bdnzlrl-", "bdnzt",
	"bdnzt+", "bdnzt-", "bdnzta", "bdnzta+", "bdnzta-", "bdnztl", "bdnztl+", "bdnztl-", "bdnztla",
	"bdnztla+", "bdnztla-", "bdnztlr", "bdnztlr+", "bdnztlr-", "bdnztlrl", "bdnztlrl+", "bdnztlrl-",
	"bdz", "bdz+", "bdz-", "bdza", "bdza+", "bdza-", "bdzf", "bdzf+", "bdzf-", "bdzfa", "bdzfa+",
	"bdzfa-", "bdzfl", "bdzfl+", "bdzfl-", "bdzfla", "bdzfla+", "bdzfla-", "bdzflr", "bdzflr+",
	"bdzflr-", "bdzflrl", "bdzflrl+", "bdzflrl-", "bdzl", "bdzl+", "bdzl-", "bdzla", "bdzla+",
	"bdzla-", "bdzlr", "bdzlr+", "bdzlr-", "bdzlrl", "bdzlrl+", "bdzlrl-", "bdzt", "bdzt+", "bdzt-",
	"bdzta", "bdzta+", "bdzta-", "bdztl", "bdztl+", "bdztl-", "bdztla", "bdztla+", "bdztla-",
	"bdztlr", "bdztlr+", "bdztlr-", "bdztlrl", "bdztlrl+", "bdztlrl-", "beq", "beq+", "beq-", "beqa",
	"beqa+", "beqa-", "beqctr", "beqctr+", "beqctr-", "beqctrl", "beqctrl+", "beqctrl-", "beql",
	"beql+", "beql-", "beqla", "beqla+", "beqla-", "beqlr", "beqlr+", "beqlr-", "beqlrl", "beqlrl+",
	"beqlrl-", "bf", "bf+", "bf-", "bfa", "bfa+", "bfa-", "bfctr", "bfctr+", "bfctr-", "bfctrl",
	"bfctrl+", "bfctrl-", "bfl", "bfl+", "bfl-", "bfla", "bfla+", "bfla-", "bflr", "bflr+", "bflr-",
	"bflrl", "bflrl+", "bflrl-", "bge", "bge+", "bge-", "bgea", "bgea+", "bgea-", "bgectr", "bgectr+",
	"bgectr-", "bgectrl", "bgectrl+", "bgectrl-", "bgel", "bgel+", "bgel-", "bgela", "bgela+",
	"bgela-", "bgelr", "bgelr+", "bgelr-", "bgelrl", "bgelrl+", "bgelrl-", "bgt", "bgt+", "bgt-",
	"bgta", "bgta+", "bgta-", "bgtctr", "bgtctr+", "bgtctr-", "bgtctrl", "bgtctrl+", "bgtctrl-",
	"bgtl", "bgtl+", "bgtl-", "bgtla", "bgtla+", "bgtla-", "bgtlr", "bgtlr+", "bgtlr-", "bgtlrl",
	"bgtlrl+", "bgtlrl-", "bl", "bla", "ble", "ble+", "ble-", "blea", "blea+", "blea-", "blectr",
	"blectr+", "blectr-", "blectrl", "blectrl+", "blectrl-", "blel", "blel+", "blel-", "blela",
	"blela+", "blela-", "blelr", "blelr+", "blelr-", "blelrl", "blelrl+", "blelrl-", "blr", "blrl",
	"blt", "blt+", "blt-", "blta", "blta+", "blta-", "bltctr", "bltctr+", "bltctr-", "bltctrl",
	"bltctrl+", "bltctrl-", "bltl", "bltl+", "bltl-", "bltla", "bltla+", "bltla-", "bltlr", "bltlr+",
	"bltlr-", "bltlrl", "bltlrl+", "bltlrl-", "bne", "bne+", "bne-", "bnea", "bnea+", "bnea-",
	"bnectr", "bnectr+", "bnectr-", "bnectrl", "bnectrl+", "bnectrl-", "bnel", "bnel+", "bnel-",
	"bnela", "bnela+", "bnela-", "bnelr", "bnelr+", "bnelr-", "bnelrl", "bnelrl+", "bnelrl-", "bng",
	"bng+", "bng-", "bnga", "bnga+", "bnga-", "bngctr", "bngctr+", "bngctr-", "bngctrl", "bngctrl+",
	"bngctrl-", "bngl", "bngl+", "bngl-", "bngla", "bngla+", "bngla-", "bnglr", "bnglr+", "bnglr-",
	"bnglrl", "bnglrl+", "bnglrl-", "bnl", "bnl+", "bnl-", "bnla", "bnla+", "bnla-", "bnlctr",
	"bnlctr+", "bnlctr-", "bnlctrl", "bnlctrl+", "bnlctrl-", "bnll", "bnll+", "bnll-", "bnlla",
	"bnlla+", "bnlla-", "bnllr", "bnllr+", "bnllr-", "bnllrl", "bnllrl+", "bnllrl-", "bns", "bns+",
	"bns-", "bnsa", "bnsa+", "bnsa-", "bnsctr", "bnsctr+", "bnsctr-", "bnsctrl", "bnsctrl+",
	"bnsctrl-", "bnsl", "bnsl+", "bnsl-", "bnsla", "bnsla+", "bnsla-", "bnslr", "bnslr+", "bnslr-",
	"bnslrl", "bnslrl+", "bnslrl-", "bnu", "bnu+", "bnu-", "bnua", "bnua+", "bnua-", "bnuctr",
	"bnuctr+", "bnuctr-", "bnuctrl", "bnuctrl+", "bnuctrl-", "bnul", "bnul+", "bnul-", "bnula",
	"bnula+", "bnula-", "bnulr", "bnulr+", "bnulr-", "bnulrl", "bnulrl+", "bnulrl-", "bso", "bso+",
	"bso-", "bsoa", "bsoa+", "bsoa-", "bsoctr", "bsoctr+", "bsoctr-", "bsoctrl", "bsoctrl+",
	"bsoctrl-", "bsol", "bsol+", "bsol-", "bsola", "bsola+", "bsola-", "bsolr", "bsolr+", "bsolr-",
	"bsolrl", "bsolrl+", "bsolrl-", "bt", "bt+", "bt-", "bta", "bta+", "bta-", "btctr", "btctr+",
	"btctr-", "btctrl", "btctrl+", "btctrl-", "btl", "btl+", "btl-", "btla", "btla+", "btla-", "btlr",
	"btlr+", "btlr-", "btlrl", "btlrl+", "btlrl-", "bun", "bun+", "bun-", "buna", "buna+", "buna-",
	"bunctr", "bunctr+", "bunctr-", "bunctrl", "bunctrl+", "bunctrl-", "bunl", "bunl+", "bunl-",
	"bunla", "bunla+", "bunla-", "bunlr", "bunlr+", "bunlr-", "bunlrl", "bunlrl+", "bunlrl-",
	"clrlwi", "clrlwi.", "cmp", "cmpi", "cmpl", "cmpli", "cmplw", "cmplwi", "cmpw", "cmpwi", "cntlzw",
	"cntlzw.", "crand", "crandc", "crclr", "creqv", "crmove", "crnand", "crnor", "crnot", "cror",
	"crorc", "crset", "crxor", "dcba", "dcbf", "dcbi", "dcbst", "dcbt", "dcbtst", "dcbz", "dcbz_l",
	"dclz", "divw", "divw.", "divwo", "divwo.", "divwu", "divwu.", "divwuo", "divwuo.", "eciwx",
	"ecowx", "eieio", "eqv", "eqv.", "extsb", "extsb.", "extsh", "extsh.", "fabs", "fabs.", "fadd",
	"fadd.", "fadds", "fadds.", "fcmpo", "fcmpu", "fctiw", "fctiw.", "fctiwz", "fctiwz.", "fdiv",
	"fdiv.", "fdivs", "fdivs.", "fmadd", "fmadd.", "fmadds", "fmadds.", "fmr", "fmr.", "fmsub",
	"fmsub.", "fmsubs", "fmsubs.", "fmul", "fmul.", "fmuls", "fmuls.", "fnabs", "fnabs.", "fneg",
	"fneg.", "fnmadd", "fnmadd.", "fnmadds", "fnmadds.", "fnmsub", "fnmsub.", "fnmsubs", "fnmsubs.",
	"fres", "fres.", "frsp", "frsp.", "frsqrte", "frsqrte.", "fsel", "fsel.", "fsqrt", "fsqrt.",
	"fsqrts", "fsqrts.", "fsub", "fsub.", "fsubs", "fsubs.", "icbi", "isync", "la", "lbz", "lbzu",
	"lbzux", "lbzx", "lfd", "lfdu", "lfdux", "lfdx", "lfs", "lfsu", "lfsux", "lfsx", "lha", "lhau",
	"lhaux", "lhax", "lhbrx", "lhz", "lhzu", "lhzux", "lhzx", "li", "lis", "lmw", "lswi", "lswx",
	"lwarx", "lwbrx", "lwsync", "lwz", "lwzu", "lwzux", "lwzx", "mcrf", "mcrfs", "mcrxr", "mfbar",
	"mfcmpa", "mfcmpb", "mfcmpc", "mfcmpd", "mfcmpe", "mfcmpf", "mfcmpg", "mfcmph", "mfcounta",
	"mfcountb", "mfcr", "mfctr", "mfdar", "mfdbatl", "mfdbatu", "mfdc_adr", "mfdc_cst", "mfdc_dat",
	"mfdec", "mfder", "mfdpdr", "mfdpir", "mfdsisr", "mfear", "mffs", "mffs.", "mfibatl", "mfibatu",
	"mfic_adr", "mfic_cst", "mfic_dat", "mficr", "mfictc", "mfictrl", "mfimmr", "mfl2cr", "mflctrl1",
	"mflctrl2", "mflr", "mfm_casid", "mfm_tw", "mfmd_ap", "mfmd_ctr", "mfmd_dbcam", "mfmd_dbram0",
	"mfmd_dbram1", "mfmd_epn", "mfmd_rpn", "mfmd_twb", "mfmd_twc", "mfmi_ap", "mfmi_ctr",
	"mfmi_dbcam", "mfmi_dbram0", "mfmi_dbram1", "mfmi_epn", "mfmi_rpn", "mfmi_twc", "mfmmcr0",
	"mfmmcr1", "mfmsr", "mfocrf", "mfpmc1", "mfpmc2", "mfpmc3", "mfpmc4", "mfpvr", "mfrtcl", "mfrtcu",
	"mfsdr1", "mfsia", "mfspr", "mfsprg", "mfsprg0", "mfsprg1", "mfsprg2", "mfsprg3", "mfsr",
	"mfsrin", "mfsrr0", "mfsrr1", "mftb", "mftbl", "mftbu", "mfthrm1", "mfthrm2", "mfthrm3",
	"mfummcr0", "mfummcr1", "mfupmc1", "mfupmc2", "mfupmc3", "mfupmc4", "mfusia", "mfxer", "mr",
	"mr.", "mtbar", "mtcmpa", "mtcmpb", "mtcmpc", "mtcmpd", "mtcmpe", "mtcmpf", "mtcmpg", "mtcmph",
	"mtcounta", "mtcountb", "mtcr", "mtcrf", "mtctr", "mtdar", "mtdbatl", "mtdbatu", "mtdec", "mtder",
	"mtdsisr", "mtear", "mtfsb0", "mtfsb0.", "mtfsb1", "mtfsb1.", "mtfsf", "mtfsf.", "mtfsfi",
	"mtfsfi.", "mtibatl", "mtibatu", "mticr", "mtictc", "mtictrl", "mtl2cr", "mtlctrl1", "mtlctrl2",
	"mtlr", "mtmmcr0", "mtmmcr1", "mtmsr", "mtocrf", "mtpmc1", "mtpmc2", "mtpmc3", "mtpmc4", "mtrtcl",
	"mtrtcu", "mtsdr1", "mtsia", "mtspr", "mtsprg", "mtsprg0", "mtsprg1", "mtsprg2", "mtsprg3",
	"mtsr", "mtsrin", "mtsrr0", "mtsrr1", "mttbl", "mttbu", "mtthrm1", "mtthrm2", "mtthrm3",
	"mtummcr0", "mtummcr1", "mtupmc1", "mtupmc2", "mtupmc3", "mtupmc4", "mtusia", "mtxer", "mulhw",
	"mulhw.", "mulhwu", "mulhwu.", "mulli", "mullw", "mullw.", "mullwo", "mullwo.", "nand", "nand.",
	"neg", "neg.", "nego", "nego.", "nop", "nor", "nor.", "not", "not.", "or", "or.", "orc", "orc.",
	"ori", "oris", "ps_abs", "ps_abs.", "ps_add", "ps_add.", "ps_cmpo0", "ps_cmpo1", "ps_cmpu0",
	"ps_cmpu1", "ps_div", "ps_div.", "ps_madd", "ps_madd.", "ps_madds0", "ps_madds0.", "ps_madds1",
	"ps_madds1.", "ps_merge00", "ps_merge00.", "ps_merge01", "ps_merge01.", "ps_merge10",
	"ps_merge10.", "ps_merge11", "ps_merge11.", "ps_mr", "ps_mr.", "ps_msub", "ps_msub.", "ps_mul",
	"ps_mul.", "ps_muls0", "ps_muls0.", "ps_muls1", "ps_muls1.", "ps_nabs", "ps_nabs.", "ps_neg",
	"ps_neg.", "ps_nmadd", "ps_nmadd.", "ps_nmsub", "ps_nmsub.", "ps_res", "ps_res.", "ps_rsqrte",
	"ps_rsqrte.", "ps_sel", "ps_sel.", "ps_sub", "ps_sub.", "ps_sum0", "ps_sum0.", "ps_sum1",
	"ps_sum1.", "psq_l", "psq_lu", "psq_lux", "psq_lx", "psq_st", "psq_stu", "psq_stux", "psq_stx",
	"rfi", "rlwimi", "rlwimi.", "rlwinm", "rlwinm.", "rlwnm", "rlwnm.", "rotlw", "rotlw.", "rotlwi",
	"rotlwi.", "sc", "slw", "slw.", "slwi", "slwi.", "sraw", "sraw.", "srawi", "srawi.", "srw",
	"srw.", "srwi", "srwi.", "stb", "stbu", "stbux", "stbx", "stfd", "stfdu", "stfdux", "stfdx",
	"stfiwx", "stfs", "stfsu", "stfsux", "stfsx", "sth", "sthbrx", "sthu", "sthux", "sthx", "stmw",
	"stswi", "stswx", "stw", "stwbrx", "stwcx.", "stwu", "stwux", "stwx", "sub", "sub.", "subc",
	"subc.", "subco", "subco.", "subf", "subf.", "subfc", "subfc.", "subfco", "subfco.", "subfe",
	"subfe.", "subfeo", "subfeo.", "subfic", "subfme", "subfme.", "subfmeo", "subfmeo.", "subfo",
	"subfo.", "subfze", "subfze.", "subfzeo", "subfzeo.", "subi", "subic", "subic.", "subis", "subo",
	"subo.", "sync", "tlbia", "tlbie", "tlbld", "tlbli", "tlbsync", "trap", "tw", "tweq", "tweqi",
	"twge", "twgei", "twgt", "twgti", "twi", "twle", "twlei", "twlge", "twlgei", "twlgt", "twlgti",
	"twlle", "twllei", "twllt", "twllti", "twlng", "twlngi", "twlnl", "twlnli", "twlt", "twlti",
	"twne", "twnei", "twng", "twngi", "twnl", "twnli", "xor", "xor.", "xori", "xoris",
}
