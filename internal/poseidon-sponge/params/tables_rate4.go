// Code generated from the Grain LFSR parameter derivation for the BLS12-377
// scalar field; round constants and mixing matrices are stored as Montgomery
// limbs. DO NOT EDIT.

package params

import "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"


var poseidonBls377Rate4 = defaultTable{
	rate:          4,
	capacity:      1,
	fullRounds:    8,
	partialRounds: 31,
	alpha:         17,
	ark: [][]fr.Element{
		{{0x34c37d28c3f4c1ce, 0xa15d6ace8616e46e, 0x23cbab5413838926, 0x104c314c3151dae4}, {0xaa647468e42a8bf2, 0x1fbfc06f37137b2e, 0xad99ee12341f6ede, 0x0bbfd74e0ec870e1}, {0xddbbbc740d2294ca, 0xc3e128c0d7dd604d, 0x255f41bb46a79480, 0x068dbe6acd82f805}, {0x90f678904cdbbb1b, 0x8cca6e86b931e33c, 0x2f5a8c702f02d1ef, 0x04f922bd39962578}, {0xec1c2b7fa2cf16f3, 0x56cff368c27540df, 0xe94ce9e353905aa6, 0x08b69ab751354e78}},
		{{0xdcdb0ce947415b57, 0xa58640bf51d2d722, 0x1507d69f356b3efa, 0x09aef6be7d445a91}, {0xada311e49e6344d4, 0x6b54bb8bf3f6c3bc, 0x2375d4e6dfa3f68a, 0x02a7697b221d8309}, {0xfdcd4e42c21b4c57, 0x2fdf1f71db60dc35, 0x54e5fcd2cfca7e88, 0x073e18896b646529}, {0xccb0aca3c31fdcbb, 0xbeebf628d0e42ff6, 0x8f7076bbfa3131f1, 0x0d30f61a86a6eec1}, {0x6909306d4d5f197d, 0x4e4e2ec064a78bf7, 0x9211335926874176, 0x09f84e5a12803f24}},
		{{0x6e9ff29a57c7586c, 0x21c86b8998317719, 0x87d841931e401400, 0x105039b7cbf555e4}, {0x15fec2d52ab8e037, 0x9fbe089eecf4d984, 0x0c8b77d7f9adfe05, 0x0d5987bddd8774c5}, {0x1f2d4b5aaa225253, 0xc6fff2e5a39cb1f7, 0x8efe88620e2012e7, 0x120863ef9d5ebca5}, {0x28a7e408f4d89e2d, 0x30b1384f83f24117, 0x3d521a1bead655a0, 0x072eb2bbab541550}, {0xd601888ff79fbbd6, 0x2ca0adbf3f51ed4a, 0x7094fd5baf8a3315, 0x085818ced58ba1e9}},
		{{0x0c0f52252b1a4c64, 0x96520852c13bbeb0, 0x5b65bf0b25636cb3, 0x06595e5284467015}, {0xbc96ba2af10cc5a6, 0xc298886cd6c7477d, 0x647deb76273e2621, 0x0be79cbb4d37eac2}, {0x7a7af65d24a249dd, 0xbc11132a1ba3a7e1, 0x25aaec6ef8dc1644, 0x0bdccbbcded73aad}, {0xd4b87b7bbe86aace, 0x458f859956c6d676, 0xf48c952d4f3f6882, 0x02098bfab39dec4f}, {0x11e07957d3846c56, 0xe809fa1f0e2e43f3, 0xc2b57778c69bca98, 0x0cdb9db69b0a69ab}},
		{{0xa2ca7211220a4d79, 0x582361afcefd52be, 0x493420b52c934da5, 0x118d6b21c72879a8}, {0x29ef8d5d581604da, 0xc5aeaf6bb2e4523c, 0xc96996eb002f6910, 0x1130af4d2207ec7f}, {0xa338343cc03d4ef7, 0x37eca5e2df411571, 0xcfd2d5d9ba513061, 0x103ebafa7dab362e}, {0x0d4e2e618c771d47, 0x5da39258c214919f, 0xb0fc9b388cb15e5e, 0x0df15627d2b464ab}, {0x9f873162321aac9b, 0x475678e3050ea787, 0x48cb443511c72462, 0x0c72da20c254f6f4}},
		{{0x167adddbc391f92c, 0xf9559d306020b80d, 0xda6e554c43bf0d1b, 0x10b0b1d99a8a70dd}, {0xb5b38b488c2a80ee, 0xbf28f7c488a54a7d, 0xc12e49f849ffc73d, 0x111d6fe065bc1289}, {0x32b8b59ad747d991, 0x315096567c62740a, 0x429e115409dea89a, 0x0c64049e2777047d}, {0x97edd0963ef1d7eb, 0x8b0ef8cb1eab153b, 0x7140101ce5243cf4, 0x11c3c3b63dfabda3}, {0x502bb3fff4d7f479, 0xb187ae88b336d48e, 0xb2bcaabbefa4971a, 0x0b9968415565ad61}},
		{{0xad39f3f13be6c76d, 0x7f27700d97e5ce64, 0xc8c1c26d672c065b, 0x0e8621753f3ea92b}, {0x2990443d9538a2f4, 0x45faf014d9e605c5, 0x5e4441ed0a04dbc1, 0x0ac056dbfa18445a}, {0x49b6ef075fa8641b, 0x9b5bef50cb9a1c20, 0x457f7ba3f4bc5fcc, 0x038b476188015ae9}, {0x0b2092352ffe771a, 0xcc66e3f302656e2b, 0xe1b8db8831ed4db1, 0x0b928bdebf20c78c}, {0xcbebeb41843295fe, 0x261ef51eb9b5906a, 0x2712ad1a5ecb082f, 0x10d2608b97965e7f}},
		{{0x9f617291b171a9f7, 0x3b039dfba1472575, 0x1869215c5eb1ec7d, 0x107fc91d08fb367b}, {0xb587b1b73e934464, 0x5cc72919492a496d, 0x9da440f0b532735a, 0x06a44c5c19d392d9}, {0x06a93869c3c208a1, 0xb529badf8f835874, 0x2a945765cc84e74d, 0x0f0bbf3cef073008}, {0x7fe548f7e0aeded1, 0x95e00b600db64ff8, 0x44928f2f7cec7269, 0x08544cadc2117384}, {0x400d083772377385, 0xcb269d24b1589ecc, 0x819fbeb9d515fa7c, 0x07f28567b239cc59}},
		{{0xcd8f3be99e042143, 0xcdeb14f751d2807d, 0xc8fa3207c948296f, 0x023e97cb99a87c8c}, {0xc06dfd6c5b8eee77, 0x9a9c8b2f8c3ebde7, 0xa002e85c30aa07e4, 0x0b3cf51fb1859e50}, {0xe14bc6e625da6023, 0x89eea52c5f07c766, 0x3c781bffdf3730b0, 0x094a532f8a00ea35}, {0xbd167487258e056b, 0xce6d56b2781ef341, 0xf40e53a38f172ac2, 0x01d527175b8c3651}, {0x74417c2756e72513, 0x1cd2ca018a3a65dc, 0x7038ce070cc37cef, 0x0e9dba000ab116a4}},
		{{0xb87b2455a433f4af, 0xf871a198d59dceb7, 0x0f0c0dc8cfccae52, 0x050480245a2fd0f3}, {0x65c96345906465bc, 0x4d102a632b5c3864, 0x958abd70d99a4e47, 0x0805d82c1d4d1dac}, {0xc188075f55d9e35a, 0x57db16a1f99ac37f, 0x917a9fbee3e84bfe, 0x0da5044ed3ec926b}, {0x2425606f78e318d2, 0xb2dc9e5f260f6817, 0xfa822b7742b677ac, 0x10ad41a2309f5020}, {0xe5e4ad9988d4b04a, 0xccd765ad72f7a4d0, 0xb57b6d4348075cb4, 0x0aca762c5dbe8a3e}},
		{{0x688ea9cfe303b7c8, 0x139fa7e653420b04, 0xb4802dacdfa1fbde, 0x01b635cf3389e678}, {0x6938538c3b33f939, 0x63af4ac9c2de1cc1, 0x67dc46362bc6e521, 0x07c3c9118294bb8c}, {0x634bc50dcde4c554, 0xe3db0e9ca0c66d54, 0xb2dc4a501cefd871, 0x02ac3749af29db28}, {0x293d7211eddc16b0, 0xa9771f50e347905d, 0x595b4d5289da3b24, 0x08ffe8fe0636cec9}, {0x36e87451743d7ef2, 0x1a2e2f65d69855b0, 0x3594965eaa21e534, 0x00f6f95943bbdd62}},
		{{0x0030a090b73e0797, 0x46d84dd9c0f19133, 0x743de2d0c67906c8, 0x099cf8417ba1d665}, {0xc170ef6c20f02b0a, 0xa333e35df4af0980, 0x1a5c945bb1bf3f05, 0x07e592d5bbc32539}, {0x94e3c9f2c21d95b8, 0x2cfb8bfc9adeb7c0, 0x2e79f7526027f872, 0x1132d66d295ae621}, {0x8eef330df70a6ebe, 0xfd9e9282fab5a003, 0x7a165a419f5c5b6a, 0x0ca44a2d89c17174}, {0xd4fc2c03aeeda74a, 0xf2a4cdc1aecfd79f, 0x72f6083dca91c611, 0x0187f77329cd287f}},
		{{0x5f6040a29d869f25, 0xfb4938e01247eb26, 0xbf94d235776ccf78, 0x05b731a8869be4da}, {0x59a3b2a97c6a7af9, 0x6312befaf03547f2, 0x8367ee09b57052f1, 0x0c43bd7b922a39f8}, {0x2d24a503b1763e3e, 0x43d6bf9b01bb0aa3, 0x4d1e0a48f480ad87, 0x101d51b2c3e8914f}, {0x3e1a75a02da22093, 0x3b9895e1e8fe2fd4, 0x6e8bc592a778a3a1, 0x0e252e15f4864588}, {0x3aed004bebde3cdf, 0x07ed1ed0787f4d3f, 0xd7c0c29d4bd8473b, 0x08d985b3755235f2}},
		{{0x4dba8f919595622b, 0xd2d1539dd3ca8bb5, 0x52ab104504439985, 0x11fb398ad74f2771}, {0x2f4bc537fbbf38e4, 0xfe1f3c3005a630e1, 0x61d4e4b826863247, 0x10418292cb3ef6fc}, {0x90ec2a9c4d6a054a, 0x758cd3149d7ae87c, 0xec56da0a647b77a2, 0x10879f53b660692e}, {0x6c24ce4858f19cb3, 0x43cc054c43e4b699, 0xe839b3d5a29e0c93, 0x12a9e711f21e3980}, {0xdd8b6f349a46331f, 0xda9450c3ea3a477b, 0x9221541950bde249, 0x102f5eb54f11ffa1}},
		{{0x162cf89ab2f73ce7, 0x0a6039a81b98e415, 0x14019636f3657381, 0x0945a72c85ef09d5}, {0x888e8f5ff57a1ae8, 0x88d04acb0ee7aaec, 0x0ddb5c39fbbb8109, 0x059c6317d8eacd82}, {0xf228407ee9c0a9b7, 0xc24d1d7a0717ed03, 0x0aa68ed25cd3b73d, 0x0337e0ede33c09b3}, {0x5da37b3a38a03bcd, 0x7f1655b0b63e5cc3, 0xe67a15745fa6e197, 0x0cba72e2efb674d5}, {0xb553b9b696b58894, 0xb4bb899870242463, 0xb032073dfb0880f6, 0x0afd4cd91665c8a4}},
		{{0x6a0272f7e458c433, 0x070f6ab60f763582, 0xeab30a554f9b67dd, 0x0d74a86e83fc2723}, {0xc2b9880839f16c31, 0x97987365d89ebc77, 0x71b2f9785a26812b, 0x0a19ea2659db528f}, {0x5aab2040e1ead6a7, 0x289a6bd0262f0cd1, 0x8b2a8d7e78c8c19d, 0x07ad794ea33eea7c}, {0x9ce68bceea681940, 0x73959a24f1f6f5e5, 0x51c8df5d0b5fa41f, 0x11b7cb680cc4b53b}, {0xd688d4697190501f, 0x34babf9b854081fe, 0xcb0090a903978abb, 0x074bde68eec41146}},
		{{0x859bd6d4f879f537, 0x1b869c608b505239, 0xf2c209687462c87f, 0x0af6b270eebee755}, {0xd03d737a961a9fd2, 0x929d861d357ef6f8, 0xf11eec843a9f0b02, 0x00963825edd0a4ef}, {0x18f702362f7412a5, 0x71438355db963d5b, 0x092fdb40a57bb3d6, 0x0ccf0e7c4e37d427}, {0x4c457b1d2ba50d35, 0x832ea8bff401da97, 0x79974a597d572ddf, 0x017ad1fb4f362db5}, {0x9362b1fd5ee4dc7b, 0x0eade2fe9859cec2, 0x5f3ea79920716c1b, 0x0b56bb898efa108f}},
		{{0xa88261330b9d34b0, 0xcb17f525cdf0f687, 0x876c6541016d8705, 0x0bc8356a32bb041c}, {0xd31d9b5f90096c81, 0x1fb7646ade9feb05, 0xa26c3914a33276ef, 0x0a4641b44b3db043}, {0xf640a35bda189c6c, 0xeebe4718cfaf5e58, 0x4fee5508b8fb50e4, 0x041a024bc6b0bfec}, {0xbc0dbe84f46679d4, 0x493bcdb078d45328, 0xc07b460aa57046f7, 0x06c24edb181dde8b}, {0xeb6d6e8a48166bec, 0xc324174dfb7b988f, 0x69216d7471157a3f, 0x051b5d911d3b93ff}},
		{{0x5833ed6fe9e7e3f9, 0x7e6de07d099ea8e6, 0x8d354e6bcb146c55, 0x0325b2aa4c97e6c2}, {0x051b107e9309ad8a, 0xcefcd03bcbbc7a1a, 0x2ad271e2f87f3773, 0x0342208cfcf46040}, {0x48e9bfda404fffe6, 0x16bc877fdd554ed5, 0x72453babf5e77a74, 0x0dc84cd5cc8c3d14}, {0x7c46170a6cb78f5f, 0x134981473844dba1, 0xac7bf308c52b9c4e, 0x03139b762b677c9c}, {0xb218f9a143ff5fdc, 0x74a5c08bdbf821db, 0x7569e1e873db2380, 0x03b0bea510fa6786}},
		{{0x448ad0fa2fb3e597, 0xb076399fa84bc5a9, 0xa83659cc3ac644c6, 0x0d8c98e02afcb9fa}, {0xd77d2bd8f4efee7b, 0x39ca474365a03660, 0x3a941f14efc26616, 0x0ba7978ce89e33f0}, {0xc65fed745ee84154, 0xe77a5623b767d7b2, 0x2ded87d02eb52f99, 0x00cff75cf4c26c28}, {0x577dbde6cafe8690, 0x8af4de9379c64309, 0x24c5890a649d1430, 0x059383df1f9b62e2}, {0x9fa86d03a17e3376, 0x380f8378349f164b, 0xb54a60fe5a754f5b, 0x0c31fce13a634122}},
		{{0xab63e5d983a9044b, 0xcc6d4e642efc0c57, 0x122b55b548ebbf17, 0x02c0e698a7e0f856}, {0x145f9d6f04693433, 0xe06c2e4691e831b9, 0x1c1df9c0974a2265, 0x0d32cb93030d4a39}, {0x4025f9caacae07a4, 0xbdbab610db2beced, 0xcabfee44cc27e4a5, 0x0ac9f6ce85f2a0c9}, {0x12d524b998a17902, 0xf04fab11ca9bd409, 0x1768162d17d595a7, 0x092cfa945f907e77}, {0x5799954e456611a6, 0x80300ea45cd278a9, 0x6edf0423f7c79be7, 0x03036966d8f89ce6}},
		{{0xa8265ec8e6f10c83, 0x8adb45afe7efb4ee, 0xcbaafe2c2f4dd48b, 0x08a1a9da277a88aa}, {0x956526e083a9824a, 0xa1223ca1d4a11f9d, 0xafee830a3f4becc0, 0x05bea67ba403d513}, {0xc6461b492ef7a262, 0xddae2f057426772c, 0xdf7d15a5e1fca523, 0x0d82d478e0c635b0}, {0x7ab00ba2096ec291, 0x09bb6953ac55b841, 0xeaff2f15d9816b35, 0x0d5f9c88a334ad17}, {0x97da35ab9b73ae17, 0x494608dcf9234260, 0xa10d56bfc1cf8011, 0x0614b8cec2f5c375}},
		{{0x8d2fd21cb62d5204, 0xb5c602ba2ea3e9e9, 0x33cb889da0022348, 0x02f744fa31f6162b}, {0x4d231ed6f312a63a, 0x8e57dbdd00603d53, 0x13f6c3dbb3fb2e05, 0x0d6eb536d00015cf}, {0xdbf131ffa1f352e5, 0xc7110a15fa608152, 0x13a3d9ec914dee54, 0x0eba0185f6f38e89}, {0xf2e8045a6c7ca686, 0x2e0b2f20d2331143, 0x6b21aad9ac6d6580, 0x00fe63082868a2fc}, {0xa60789902acece97, 0x762dd75c026e4148, 0xe651eb7d47ce249c, 0x00e0e1c71346d91b}},
		{{0xd89b2f50ee965e9b, 0xab62490d2e7d9561, 0xb4faba9c8c7cab2c, 0x026294199b38da09}, {0x1508d4287de2442f, 0x264ae64f320a479b, 0xd192557efe510882, 0x011268c6dd3dc572}, {0xd782d0af425a2c0e, 0x307eebd12931d9b2, 0x085ff0d1bd04bad5, 0x010024c5d330a1e7}, {0xbf688e6a4d8a2e07, 0xbe8cbe265dd4ebd6, 0x512c59c81d19f571, 0x02a8ea3af3745f54}, {0x4d02a9478590cd86, 0x9e536ca4434db3c2, 0xebb83a1259942e9c, 0x1076f6fe42d1a9d5}},
		{{0x1299d0c32fb1bcae, 0x8c27b990f3aab453, 0x9bd9689bea61be75, 0x06b9f9335dd29fc6}, {0x7f64e95cc79e5175, 0x249139f0a2ce8825, 0x570abc043ed6eae8, 0x0b109341de652715}, {0x74e2eddf0312e0ad, 0x58806c84a1de42dd, 0x2a3dce3daf88f3f4, 0x1050f4085d4df22f}, {0x898a4c1f25d419a4, 0x7b613cd515398fcc, 0x5d2280ffdf58cce4, 0x0e09b509b50d2e68}, {0x128bc6f92cc0870e, 0x27b047fa0b6800a3, 0x6c80f4bfebb35804, 0x114b4bd63b7258b6}},
		{{0xe8e8c6430b902d48, 0xff1c0f40d1163fdf, 0xf1ad609231888476, 0x0e97d0b87a126466}, {0x48f0c346ae6dfcea, 0xb6c18de6421a3319, 0x8adc7eb9b075e6d3, 0x045fd0c3329d6c3a}, {0x78c140b1e389362b, 0xb4104def11d44981, 0x426653664e573024, 0x0bf60395946cbd3d}, {0xdb02df52a29d9192, 0x4987bc95d2d1a447, 0xbad550d28a11278b, 0x09c231bba8190693}, {0x5d7d24abda2bbac0, 0x2514d65cac29fef0, 0x2b70abfba3b94316, 0x100c7fb410bf792c}},
		{{0xed01ef1a384d386e, 0xb37eb6abf0ad43ea, 0x6a9a84774878ac3e, 0x0f610861dea68692}, {0x316e107cbbbe875e, 0x88bcdc7722f5b164, 0x73c9295fcf9ad31f, 0x0f0d9387e64d3c42}, {0xcff86cac5d7030a6, 0x4adb98220eff6926, 0x43a5e4fd246bbb54, 0x077bba3b66e5d01d}, {0x0f363a2c549aaf4c, 0x284e6db304956aea, 0x53e3540d8af76106, 0x04daebe999da21e3}, {0x1f5c654a34db2c92, 0x493a05e12dbcefdd, 0xbfb3e642bef6267a, 0x0a6a39dfc688bd91}},
		{{0x78ff280e79e30945, 0x1587115963137fe0, 0x5656f8e128f5b73f, 0x0638cb3b46cf12c0}, {0x242d861623367732, 0xf6d5e94ee280555f, 0xd5c79835035b2ed3, 0x0dfaed7ad427b8ef}, {0x3fe87c3f86695156, 0x82961eb972ea1466, 0x8c2c3583560ab09a, 0x00ab154dda0cd21b}, {0x4caeeca3d9ba0726, 0x1b15111c4457a0b6, 0xbeb63842406c735c, 0x0408555969ee39aa}, {0xc4c54ad863ce1c57, 0xbdd25fa4f1ee5894, 0xbf55788b3847f169, 0x11789570cdd04ada}},
		{{0x380d6db568f77f5f, 0x8f78b2d87eda69a5, 0xd0e882e89b731612, 0x110487262edc3cf8}, {0x61f3573f07416fac, 0x2ba9fd5ff1272882, 0x46dac88926ddf356, 0x0e1231540a489e0c}, {0xae86bed43d5fcdb3, 0x65e55f6fdb7f47ff, 0x3f7ecabd02040fbc, 0x11bbd2f6433688af}, {0xfc39133de865a40b, 0x3669c400ecf608af, 0xbd13a8fdbfdef917, 0x0b7dfe74ece0f224}, {0x656a5db9ab9103db, 0xe90f85dd6c16beae, 0xd879eb52bccbf9c0, 0x004b2b4086bc7222}},
		{{0x42c36c90b21930bb, 0x6ac6f2bb382436f5, 0xc963d8f5d8822fd6, 0x128bd86e756ce9cf}, {0x4078ada5c50a442f, 0x4a422fe00fa8d3b1, 0xbcb731eaf6ceed76, 0x11aa9e44fb2b5c1c}, {0x13363fc3bb98378f, 0xae9d5633cf029b0a, 0x00c114dba7435624, 0x0aeb63b41468ee90}, {0xdb0561c351d6e2de, 0x5d597fa942b6c8dd, 0x08fd516123efb1b7, 0x015fe557f5c1a709}, {0xff5e9f023346d59b, 0xca9befbc2edad620, 0x8a63b40f2f217052, 0x00f98b27de9920a2}},
		{{0xde9af9978c5241f7, 0xc9e0473e54244f68, 0x589bfa3ce39d556e, 0x07feafb67dbd45e6}, {0xbfde5917e92826cc, 0xd430229ef05761b7, 0xb2890e99ae7a1a4c, 0x0384eaf87db9a8d3}, {0xd01c5b11f8621284, 0x94b95ee8e84fc9e2, 0x317a5a5b517cda9e, 0x1280d42d1c5778f0}, {0x3a6a753c29b95a0e, 0x78208c32bb1178e3, 0x044d2d24a360e6c7, 0x03819b1372e208dd}, {0xabdb0892036b1e09, 0xf0abdb453318165a, 0xc04e3f5fd0ee8a3d, 0x121705838a86935a}},
		{{0x276b2c3c3dd3e19a, 0xb53234564a7defe2, 0xa1d7cccceff0b2e4, 0x0519780f267659b8}, {0x21560b6827899154, 0x6c6eb1ec2caaa856, 0x30f6ee8ced76e57f, 0x12600045de17f916}, {0xd63100dbaee85415, 0x90ae0cf52556a20f, 0xbe5c704c9bebb53a, 0x08b45688d081556e}, {0xb85c89704e1a4699, 0x6de380c5331a2fd7, 0x23d5916e45e61d29, 0x0cb375ddab9fec4e}, {0x6f7b0bc222c60206, 0x9b3786b4b42c9388, 0xae80c61ec4a38d48, 0x0a2adfeaff491ad7}},
		{{0xd1085b331108584d, 0x97d339295343d45f, 0x15892b5aef1a7703, 0x068105652ebc3849}, {0x50a6304cd7c11586, 0x5d96dc42517e3a07, 0xf5a560bd0343a602, 0x04565d8ba6dea95c}, {0x782a490c17303181, 0x2b6458e617518440, 0x21b62c5244ac5c09, 0x0ff234a44a39373a}, {0xf13c259dbf2a0473, 0x6ce1d4888e1e0479, 0xb5e1a9094e3097b3, 0x0ad9356a333183db}, {0x986ef649ab644550, 0x0d8dea2ef3d1a2b4, 0x8f5cbba58460e252, 0x03544ec0b82fae0e}},
		{{0xb9732b249337513d, 0x6c62d0a90ca1a8be, 0x2f3045e8088ed437, 0x10ad45388be4cc95}, {0x2a3ecda70e7ea33d, 0xe2343860d067b2c9, 0x09d90a6ba0d940b7, 0x1027578a2a9a7ec0}, {0x4b44d51cdbec611e, 0x0c02672aaf3aa0a4, 0xce2e107ff5bf45d2, 0x095e5628dd672e52}, {0x5b6c65807ed07a24, 0x8cc9efb055b8a809, 0xf1a087e288ecc998, 0x04513a3aacc413e5}, {0x9087f58f97355058, 0x32af21f9b119da52, 0x53bfd9300f04a136, 0x0e4d6b9eb07eafcf}},
		{{0x64809306615b7b06, 0x9e1858fa7e16da34, 0xabff74f8ec1b0a15, 0x0449513498871599}, {0x6b9d654c6a690663, 0xd9aa5dee7c304339, 0xe897952b121561c9, 0x0102bb91132e9859}, {0xbbc512cb89498a9a, 0x2a45576e6c256300, 0x6e89fe9b7694f804, 0x093aaaecafbccf76}, {0x6dcb42f92f5c0904, 0xe455214f738202d6, 0x2a6520fac52447fe, 0x036c7411034fe04b}, {0xc55f6c57b49b0fcb, 0x1db20b350069a738, 0x94b2367d412e9e66, 0x0858b5ad6de3d9a5}},
		{{0x7789e62c71985cf2, 0xfa4ddca5e9dd9a9b, 0x42829fa83fcd075a, 0x10eebe8dbb4186cc}, {0x43c3211015add090, 0x25a2e447003b4c21, 0x01ef903ca0625c2a, 0x0a8b56a026290280}, {0x40f0bf601aba7773, 0x1ea6d782df09119b, 0x649f1a6ce33adb29, 0x12608155f13bf144}, {0xde2d8d9446602158, 0x5217e6ce01d8a258, 0xd895e6beef8ae623, 0x002da6dd9b5e88fd}, {0xe3645a9003fdc222, 0xf09ffcdcea9a0eff, 0x5310ab42b9068235, 0x0d6a501b6d72ecf4}},
		{{0x3deb0ed2b28ec2d8, 0x5b89eb6e6cabce7d, 0xfbda2c1aab050a97, 0x086aea3ac2145b94}, {0xa12b9b4259a738da, 0x445e3db34e7f0e08, 0xd284767dd7f59220, 0x00c2c7974e05364f}, {0xfa9b191b5ab58802, 0x68571c25cf5a6587, 0xec10f287aa1d19ae, 0x07f6ea8da886ec05}, {0x82d526d105227aa3, 0x14354ca7f7fe5485, 0x2cf46cece7e8a9e9, 0x079eb08b4781465e}, {0xef2bd27bd63cec2a, 0xe3684cc96911dfe2, 0x5ee736b49ecf411d, 0x08b791ac931f5995}},
		{{0xdb2863eb26202d85, 0x3a5ef8834a9affb5, 0xdf480bade7f98823, 0x10d086817eb596c0}, {0xf513d0cfaa2aad81, 0x6cd929a0ea6ca1f8, 0xeb9a74907f256902, 0x095b43d8fb50a430}, {0xa7195caa864bf87e, 0x5fae28c5396fecc8, 0x01b96f27a2e85d0d, 0x11776ff9bbc79564}, {0x9986c01d2d8e48c2, 0x601803dabaf5c486, 0xd2dca46de51c71cb, 0x11ce371da44a6068}, {0x9ee257eeabe8bc1c, 0x81b56b88b54712c9, 0x13cdc095fb4a3db7, 0x1115c977a6979c8c}},
		{{0xb0a9a8cfad579055, 0x7c8835a1aa770573, 0x0637a89c5a445552, 0x006658641187ec07}, {0xb220d1b3553af7ae, 0xb56d99ce11ab4c19, 0x6a96ed8f19b96e92, 0x123354b6348c89b7}, {0x064abdb927f37c1c, 0xa892dd98b0c838ad, 0xa25abbc04dea8d6c, 0x092c870a499ed2fe}, {0xb86e529d6b164570, 0xe81e1a580647e2cc, 0x48312bce7f7a513f, 0x093653080d45cd92}, {0x8517575c6b18774a, 0x8abcd4390557e245, 0x09bb2e43571e6b69, 0x0edef9abcd4ea40e}},
	},
	mds: [][]fr.Element{
		{{0x129d6d7d1cc5fcb4, 0x1145e5509561cecb, 0x4e629f7cb462339e, 0x0dd2bd5fef796a36}, {0xe36af2942c2ebc1c, 0xd362c226962eaae9, 0xac22db0fa407eaed, 0x11cc78593acf08a0}, {0x88fbf0b649ef6e17, 0x56090c7aa12854bd, 0x23463285ff405e9c, 0x0c4a501067fd8396}, {0xec1e908736f3fa32, 0x8973d9f0da481cfa, 0x15589e4018d83a41, 0x05e5979d71acb269}, {0xf97603086c5e7f3c, 0x5332d13d00579cbd, 0xac3128d6d827532b, 0x0b620c983e995129}},
		{{0x85dfecc5bf31fba8, 0x7246021413774b15, 0x7f0f7fa389237614, 0x00d92aa1c6b54979}, {0x8a64d8dd952bc3ab, 0x5fcf9ce67589f31d, 0x32404ea89150a17c, 0x08b7dbcc25ecc7a4}, {0x7df7495995f15e3b, 0xe75b75be2862b48c, 0xea8225a012986253, 0x0a0cd4dcb440e416}, {0xcb0cead5a20db973, 0x88f4d85880202dab, 0x5102163a6dbad1f6, 0x0c03574ecbf95ca9}, {0x2e0c8052d9f9795a, 0x56d92804cefdf567, 0x9549c7653d0da000, 0x0d385ab83935bf7a}},
		{{0x45526e24c0a806a7, 0xfa80fd186caa0f4f, 0x1d243cd68f7e3255, 0x09ba56ff8a955021}, {0x0db4bcc7aed25d1b, 0xeba3dfaa6fa07fd0, 0x6c54ef136f5a02be, 0x0875a92b82d4858f}, {0x74a9a40bdab2bdd5, 0x721224c4b9ff6c34, 0xf78cf573836345ba, 0x0cc753802bd32522}, {0x18eee7badb695e22, 0x9431cd0644342165, 0x6896249cdd8671fb, 0x02d7432d8be840d5}, {0xac6309126ebb04db, 0xde7d2a8310c77358, 0xe410e6303b5648b9, 0x0652ae9f55129873}},
		{{0x4fafd74cc4c97736, 0x665a55f3a17a7761, 0x49e3bcd21f99666f, 0x082986d19f468ddd}, {0x471da1e64f4a6302, 0xdf9eb918fd69eb41, 0x01d364ec2f5a9ed3, 0x1022a290908c57f0}, {0x12e463771ac88c0b, 0x20ec679b6849a9ad, 0xc1a53f18d45bfcbc, 0x0a1a97836aa33944}, {0x87782a091cedb75a, 0xb9e54366a990e29e, 0x21beffb0046a7408, 0x116eca7765190cdc}, {0x51e753af6a13a2b9, 0xe27a1bb5e81ba686, 0x0371dc61379f6cbc, 0x00d5f588f2c4e861}},
		{{0xab8c5132a2e1751f, 0xdfdee98d985b930a, 0x93a1aa655751698b, 0x02f088261c2e5a74}, {0x81c3f0233d3de76d, 0xc2186fa7e83de988, 0xf9d8d6159302f65f, 0x0f21d8d618cececa}, {0xfde0238537d11331, 0x52c0f497f2d255f2, 0xf2a50629c87f5656, 0x0cd886e4975b02a2}, {0xee17d462d64f3465, 0x646c6895c2c977ae, 0x76593027d7587229, 0x0725ff3232434ece}, {0x067b04ecddc55d7d, 0xfe8ff0359ca9ed39, 0xce33b9d427a37b8a, 0x1186e1ed389df5b1}},
	},
}

var poseidonBls377Rate4Weights = defaultTable{
	rate:          4,
	capacity:      1,
	fullRounds:    8,
	partialRounds: 13,
	alpha:         257,
	ark: [][]fr.Element{
		{{0x4e283725803f5879, 0x0068267072fb4495, 0x7bc4443d5dc158bb, 0x11c737b69a8b2f00}, {0x40ddae96281f127a, 0xc25a2daa23a7ece8, 0x9cb00ad9d0c50d68, 0x02a05eec11ff0e31}, {0x19e9914fec056389, 0x363e738380c09e97, 0x401ce38509cc78b9, 0x069646e7e9e20526}, {0x6e3da0d2eaa214b2, 0x2e861dae3f574030, 0xd9c94669168802e6, 0x020baf9550c4d61c}, {0xa43d9d046437e64a, 0x5374f8ef7ace9358, 0xfc93dc28106d8f72, 0x063fb7599ce992ac}},
		{{0x03ee716c49ca9b4c, 0x342a012fda8add6a, 0x5e60977195ddf870, 0x010fcf0660bc191c}, {0x7381d6d295efa897, 0xaa08ca2090d71082, 0x635fe4343edfeb8f, 0x10207b0cd245c552}, {0xe97b16fe25a03dba, 0x15da2b258360b554, 0x63359b2ac91a4060, 0x0950443349837751}, {0x4f3f59efe128b102, 0x1f79d90846243466, 0x6e449fe72fbf5092, 0x06daca151ad57a75}, {0x461fbfba619b26bb, 0x457ecc9519f7ab82, 0xbf3cdba03cb77a6c, 0x03a39526a1fd50d9}},
		{{0x67fa4a0b1d921990, 0x130a904f20c83211, 0x5773ac9e639a8e2f, 0x0f8d05e86e539653}, {0xdd9f5f8e6de0773a, 0x74bed6e15b64fed5, 0x01a2433c395e8655, 0x0413cdb0c00adc21}, {0x1f77bc0bdbe06517, 0xb054531a6341ba26, 0xbad2544d44c73e28, 0x03fc190ff715fe87}, {0xc6ad71195741b3cd, 0x0b8e19bb01607494, 0xac76fd5fa7ab3a6e, 0x0c23dad0425d7406}, {0xdefcb985ade59556, 0x147ed719b551a8dd, 0x5c12d4e6f29786e1, 0x10f888b25f14919a}},
		{{0x37718dd0d7c2fb2b, 0x7747f20273513a05, 0xf63fe48451c3b7a1, 0x0973e197fb4cfa88}, {0x4906f8df6db50355, 0xf8af338824ddd484, 0x22c5eac3dc905606, 0x10c429e3e32fde95}, {0x99ef81e14b01dd35, 0xfe800a2265e2c3d1, 0x4f9d39d5c4830cda, 0x06ac11d568f33bd1}, {0x61bce756a29fd514, 0x18caffd85cdbcb4c, 0xc9fcbf6063f158d1, 0x0406fec69439f57d}, {0xd01ecad65622e0a2, 0xe10c2c033453436b, 0x52f01bd66c93901c, 0x03bfaa73c089ab3d}},
		{{0x1df87222544e938e, 0x1e9447ad2df8087d, 0x1ba9f8f5c995e9cd, 0x0583143c4ca0d073}, {0xb88942fbb0d9a7ac, 0x6c7b52b01118658f, 0x899df4d233619171, 0x0af468fae2dd1389}, {0x49dec3ddecd5359f, 0x1f2cc2fe277e65bd, 0x7b686d9e16dd1d52, 0x02981793bf36543f}, {0xcdc3b99f0b49408c, 0xaf15a6451aa1d9a9, 0xc69c8aed57d2fc54, 0x002a4f39adc17718}, {0x0512228d0f73a003, 0x726f9c3b9925aff0, 0x42c4590859ef7418, 0x0800703d3a844a58}},
		{{0x83de7a3b5ae5be1d, 0xbda298ceabb5d64d, 0xa8d1d0ebeb53437f, 0x11ef94cdafd11a79}, {0x15ecb1ab00eba3dd, 0x1d3250bbe7819463, 0x744622c6df1d9bae, 0x0c6e706af05a9a3c}, {0x4a5b9fc127286688, 0xab69418888f79c27, 0x97a6931a6b787f4a, 0x011022dc74c82e1a}, {0xc606ba735b7c90f8, 0xffbac99b05cbbfab, 0xb0c5d1822742c6a5, 0x035fba780e9eea64}, {0x2aaa6eb812da30ed, 0xdc0f7bed084a0428, 0x28f166b0eb71b815, 0x10887a404ee9d826}},
		{{0xfaffd6b82715b163, 0x7d96b7c4335c693d, 0x36b0d411187943d2, 0x0f0885e14e74c403}, {0x71c097a18df148c3, 0xadb1293a77f5d7c8, 0x0bd24544ce005974, 0x0ab1c7920bf97cbe}, {0x403768eb28a20f10, 0xf9ba41aadda71887, 0xfa0be7f67df07d35, 0x0574bbb4facd5251}, {0x26ac9e1c672fc362, 0x5912299db2f820a9, 0xb702815ef5df6cbd, 0x054cac3b52c99d03}, {0xc5ce26bb8dc32779, 0x1fbd273db3f6f521, 0x6cf78d029540134e, 0x0bea15ee2a1d42d2}},
		{{0x6ab1c43976b686d1, 0x46bb1b6eab00ffd1, 0xf42f06fd4a3b4e08, 0x0938755be7b13ea9}, {0x84f9d36e99f50d46, 0x3d64c72f10f52b48, 0x1cffdc2e18b26b8e, 0x0d0b9f0fbf4d1532}, {0x3e876c7536d52d54, 0x8c71103be96e0aa9, 0xf7868e91c9c5a9a8, 0x0fac270754e0dd76}, {0xdd001454898e4fa5, 0x6c6fe47387e624f5, 0x115ad2549066d41e, 0x0bc696f6b3c67b0f}, {0x85b9695e0cf1fbe4, 0x75e9587903040954, 0x9fd3472faf4ab4c9, 0x0bd1b26205c76d26}},
		{{0x92d97dec0a6d804e, 0x979399acc6beff36, 0x8f346748a835a301, 0x07fa1dc2ddeb8666}, {0x624003a019fe95d5, 0x2f072389365887fd, 0x12826e40f27baa5a, 0x0cffbbd513ca3a65}, {0x35a254f6cefeea2c, 0xd6b1546da2ca018f, 0x929e5e5ab6539fd6, 0x110bcfcbca09c85b}, {0x848aa81f26b8b340, 0x39988251ec373349, 0xb3c70f6f498a893b, 0x0f4be61ed7d4c00a}, {0x7474e4fffef3dd20, 0x6b0ed432a3b4eca3, 0xa3c147edee3669a0, 0x017f3d5ea0a7bd1a}},
		{{0x90149312a92001a8, 0x6a96c31af1a3d305, 0x022a8e5af0f53ad3, 0x0e02d1aebb08f7a1}, {0x9729f73d196d9883, 0x843e3fd145fdc9ad, 0xd340b440c014226c, 0x0de9cd5497162dd1}, {0x6062d6a0f7897fb6, 0xa93d6c343aef4580, 0x7b402ec16012a487, 0x0bc265f0d7f1a5b2}, {0x49ecb0c0822a869d, 0xf6c8f0eb7fe19cbc, 0xd3879671d07a6e4a, 0x0a54825dcffc655c}, {0xd3247830c081a325, 0x2018b7e40c1b7ad7, 0x6bd8877d70b9c73b, 0x0caa14829b967881}},
		{{0x8829b3d445f2d399, 0x0fe36812d80218ff, 0x7487a9d7ab8efc6f, 0x0ccd92842c41b58d}, {0xa22014e370eb281b, 0x572ccf5f1bf7d4ae, 0x2431ac856ef115de, 0x1069049dafed701f}, {0x1ef2773e4f15e103, 0xb06e0e3eac07e95e, 0x6978d009100b4422, 0x00eb6ff9426e30ca}, {0x72b0e2bbe5fb4606, 0x513dcab8dc7aa314, 0xa43f0295bf12ecca, 0x0ab00ae15a25a57a}, {0x18f2b9deb5a53774, 0xb565dc80be7f4b76, 0xc8fe100b268bce13, 0x05c9f5c47ebc4fa4}},
		{{0x98e4feb18e5714ac, 0x55b04d4ca2db3202, 0xc217400c9559d4de, 0x00fe36d97e618531}, {0x58c97fcfab9c03d4, 0xb15d33e3f4b390ca, 0xe7e463f8b4398f17, 0x05fa3825fd0c4a5f}, {0x3f3e7048ddd5d877, 0x2048f4247fa4134e, 0x846286273ac9ac26, 0x0a4bccee11d0da95}, {0x4b791b41d39872cb, 0x4c62bdf69c30baec, 0x66dd973a72ba92fd, 0x0f70b2dc1a0e8fa9}, {0x3208c26d7fd8b0a5, 0x05dc819853444c11, 0xc3466a2fd16eb9d3, 0x124dba4b2f03fa5e}},
		{{0xb0340b4dd0a3de01, 0x8f6e691e6388e42b, 0x5b7a99b206bda78b, 0x10e1e6cfd34ee4dd}, {0x396de7a2f1a383d6, 0x12e4efec392242db, 0x5d96e50fca44a409, 0x0fa9e42c2dc1f6b4}, {0x1ee8aa41a6ffcf51, 0x94d6b97ea24abd13, 0x02d8a7f96ec95329, 0x0c6994e9bd3c7bb2}, {0x9a991b1f2cabd83f, 0x395f17a3ae1f2b9e, 0x2f86832a33f7cee0, 0x065493a8a71f6b30}, {0x3a32f55c06533c03, 0x99fc218c3ece2b47, 0x63a4d3a018a75288, 0x0047180e2b4781fd}},
		{{0x42628a4c65fb183e, 0x2fd3a9557c78fe64, 0x30377d574bc7a91f, 0x0ec6011ae3e21f4b}, {0x9c2cfc52f6059d0f, 0x05cb30de782b9876, 0xf278ac37811e2314, 0x02186f0981219826}, {0x37fe78b62b4b3bf0, 0xa1627168b2db1f70, 0xfd29881d5454c6bf, 0x0a87c0238c43df18}, {0xd221564a9491ff48, 0x68cd59364a5dbaf8, 0xe9893b6b89b5287d, 0x04fcc604b2109dfd}, {0xd958f53608078e35, 0xe0d326174f15328c, 0x8488759a63e944bb, 0x095dbdcb693c3d79}},
		{{0xea9ae3d22b2741ff, 0x8d787837b913e2f2, 0x6bb4fbc54573d831, 0x08a058cabb73e952}, {0xb0b0d30757d52345, 0xd5913aebfc9c66d1, 0xf024e5003ad5c36f, 0x0c355ccab22f2948}, {0xc0a4119dff4f961a, 0xf4147cc4cc7f0b4c, 0xd34bf1137033f887, 0x08e81a368658e86f}, {0x68c975216c002945, 0xcd8edeb9deb69e8b, 0x7811c8e71e60a857, 0x086e5bde76113659}, {0x1fa6daf90e6eddaa, 0xf80c3d8832d5620e, 0x3a518f98fbe25f39, 0x0a76a6f928e4adf8}},
		{{0xcd0a9569c0621182, 0xcb2c44b907bb4d84, 0x2ecd50e2ec83b2ee, 0x1077f4f322f07170}, {0xd20cfac71829c9c2, 0xc8e6aa607a446043, 0x62b88c396316406d, 0x0d4880cb5d531cf5}, {0x7d02f6a4349c80b4, 0xa8d4618ff3e7c928, 0x092ad15ecf3cd36d, 0x1125d127c9d01560}, {0x29b7bbd3919b92bf, 0x1bcb766abf25519e, 0x25efb8caf15d2942, 0x03d54b02476650b6}, {0xd58d0a6f989f8123, 0xcc3a29fb1765214f, 0xd7da0700ba6a357e, 0x11f90fb6d2ca3b74}},
		{{0x013863f809141b05, 0x43390cea20793582, 0x5d4ba0d875821f90, 0x0e5c4e88003bef4b}, {0x8734685fb1d3c021, 0xfe6c95035262f329, 0x2af5a6acbf49f202, 0x10466ca0cd10a6a0}, {0xfbf22ae7e2771143, 0x57daca4fa31d55f4, 0x4503569f36aab648, 0x02ff043b2cf4583d}, {0x1f4f124eb8bcf7b8, 0x5d06ffe0b2bcfdba, 0xbb7e524920cc834b, 0x1105278fd7e6dd0b}, {0xf29ac8ea89066922, 0xc73bf55529da32a7, 0xe4fcfe5ed8f9b93e, 0x017d195378e2fab5}},
		{{0x02e6c3fad09011ec, 0xffb0e041c978aaf3, 0x0476b8325b324625, 0x0a1d3ab91fedcb82}, {0x1913a501090a5756, 0x7fc8c4cf437e90c2, 0x8794d84c217c69ca, 0x1138dbcb1b88678c}, {0xa185ee354b54b2af, 0x4b6dd631e3bb2179, 0x1f954104bc41f34e, 0x08ad10b319533014}, {0xdd45dc3e4cf6e73d, 0xf037d4890f453a41, 0x3dad6a0fe1ed5710, 0x0af3cb642bde0e65}, {0x58b8f6ecaafde1c0, 0xc54ca2177f28426d, 0xe1cf2ea23de46c79, 0x0a9cdb808e987814}},
		{{0x8fce8e26ac9fce31, 0x093f4a298fd2c112, 0xcb7a433bef0131dd, 0x0d0a229ba12e0b76}, {0x4e75a38c1c909c41, 0xd108d5e83493a815, 0x4385000350c75afe, 0x0fbb02237523ad0f}, {0xbff989f78d0f8bf4, 0x747dbcdb3c477f4a, 0x50b1e97db5ca9553, 0x09adc535fa405179}, {0xc24ee01b41e16dee, 0xbab3addd4c435ee9, 0x746d294024b436ba, 0x035c12ad6aff4ca5}, {0xbe4464664f85670b, 0x5674745c816eaea1, 0x6d9532524fd21f30, 0x03be3236e09d7a62}},
		{{0xb5b809c2a743549a, 0x565359a75a79ad9d, 0xf6b308281b555f2b, 0x0e6f354809d1f8db}, {0xdcdfdc6a15300a19, 0x85d2eda5d154e79e, 0x0e7bd8b64c0af2b8, 0x015be371bee4d91f}, {0x7d55a5383d9fa776, 0xd862b1c1b9ad662e, 0x269573c938c270f6, 0x025145915204dfaa}, {0x1a5b9f362b604a83, 0x0d181458ce126f9f, 0xc48c4ea63e753427, 0x095606834c3ccea5}, {0x6cd5ae8987ed9e4d, 0x4269ee79f1bda417, 0xfac9b46226e5d0ab, 0x05e243652dfdf4dc}},
		{{0x4803e1351013b679, 0x80eb26f058808a31, 0x2052ad159b8c93ea, 0x099d2954de879535}, {0x670afde754aed342, 0x2bb0a96769081e62, 0xf2a4513bbcd256f0, 0x0fa27e74d1598fcb}, {0x17e09101af3dfb71, 0xa3572f1c3d240e4e, 0x9e835789d61dc79f, 0x0225e1958e0e0656}, {0xe3eaae2f45947779, 0x7581dec1ea87132f, 0x851d38defa9802e8, 0x09a5d15cfbbf622f}, {0x6cc4371904975a9f, 0xcef29cc39c7af238, 0xadd51bf077740c88, 0x0329eb29be99ee66}},
	},
	mds: [][]fr.Element{
		{{0x652ce0628f616dba, 0x2a00461c11d4e100, 0xa14d76c7610dec34, 0x11b976e2453c9710}, {0x5cf1d2f13b7882e8, 0x73e67b9304d22586, 0x2237c9532003e755, 0x0fde140ab2ff97b1}, {0xb877521e0b5140b7, 0x0ab78edf65345b79, 0x64606e00abc0e5ac, 0x0d4d75ccf55d1e27}, {0x90859edff3bbfd86, 0x4ca6c7113b97cdd2, 0xf88fa9de72b3ce02, 0x064a7a06a9b1b6b5}, {0x099094e97f5c54c5, 0xd2ce88a6ddc213fe, 0xbe7de924d91d480d, 0x10635b27d6db7da9}},
		{{0x3f9b171eb064a89a, 0xbc59308f6c238723, 0x6084722a2f4db71a, 0x0495f18128454aff}, {0x0b88b8d3edd97e7c, 0x35b96e5676261152, 0x49d09a978200e18b, 0x1218a4c81a4d16a3}, {0xdf79afd1077c2624, 0x5ce5b5b3e870d5d3, 0x651752b6787b3963, 0x0f8277653582a7c7}, {0xd30ddd8ae87359c8, 0x5e54b52b2a48f177, 0xf10d2d57bf8525c0, 0x0727a691d213d466}, {0x094017d5be6ddbcb, 0xff7202d4928fa05e, 0x4c1a725fb352d79f, 0x0d9c3360116c92cb}},
		{{0x264cb09a2ef31299, 0x39172d0d846f2e1a, 0x95623622b07fc6e9, 0x051c8161aa5ae3e2}, {0x6bfe3e5c3d8af9e7, 0x0fcd14219942c005, 0x862e6a83934da6b5, 0x07b01416b8517377}, {0xcbdbbe6fdafa490d, 0xc2d60c64d666cb58, 0x03e7625fe02f0050, 0x0c5cd58d755e36ad}, {0xfd0e506c7b905999, 0xee3568a44913a096, 0xb533c79066725220, 0x07233b5a8b6d77e5}, {0xdbf068191bf691c0, 0x7537e0c5226fd6cd, 0xd3c5c3a730d3ea45, 0x10e4fa789c7294e7}},
		{{0xe0d5c229e6894cc1, 0xafbf1486b380a233, 0x20ab18bd4db3365f, 0x00fddd14aa418e0b}, {0x99cf3236c09c8236, 0xb5b4892c25fb9784, 0x86c3a199694a4c80, 0x0c506b43e8d21cfe}, {0xd6bf5107df0012fd, 0xdf045f7dd8fdacf3, 0x1be81fe182fc3005, 0x0ff8d5d5ca128429}, {0x92a6d5ed9739e77a, 0x71b2dc1f3b6b0474, 0x1d633e820840f1df, 0x0887594490c17025}, {0x02a836096a12da9e, 0x30fac709aa0d148f, 0x4205185e7889d3fe, 0x0b23725bbd0a7418}},
		{{0x91d012ded2c82fcc, 0xe1939c0c214e0f0f, 0xf94d139137153e42, 0x0c0c603170debfcf}, {0xdbfcdf9beeabc417, 0x1a8b3435ba3c54cc, 0x9bb70c1fdf3fb6c8, 0x0f58d370fcad6267}, {0xb87a787734fdca04, 0xba2c1530dcf88ef2, 0x1e2e16e691d6d861, 0x09c9dc10afb1070b}, {0xee01603b8301075a, 0x6fc23652aa44d63a, 0x7b091a4d8eecca92, 0x07845836da2b6279}, {0x9c112c47c1c7a6b6, 0x15bfc7c9bb3238e1, 0x2a3d5f11d000d5dd, 0x07aa140217937a2d}},
	},
}
